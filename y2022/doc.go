// Package y2022 holds the 2022 puzzle solvers, days 1 through 25.
package y2022
