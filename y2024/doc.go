// Package y2024 holds the Advent of Code 2024 solutions, one file per
// day. Every solver is an independent pure function from input lines to
// the day's two answers; days never import each other.
package y2024
