package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d19Amount holds one quantity per mineral kind: a robot cost, a
// stockpile, or a robot fleet.
type d19Amount struct {
	ore      int
	clay     int
	obsidian int
	geode    int
}

func (a d19Amount) plus(b d19Amount) d19Amount {
	return d19Amount{a.ore + b.ore, a.clay + b.clay, a.obsidian + b.obsidian, a.geode + b.geode}
}

func (a d19Amount) minus(b d19Amount) d19Amount {
	return d19Amount{a.ore - b.ore, a.clay - b.clay, a.obsidian - b.obsidian, a.geode - b.geode}
}

func (a d19Amount) covers(b d19Amount) bool {
	return a.ore >= b.ore && a.clay >= b.clay && a.obsidian >= b.obsidian && a.geode >= b.geode
}

// d19Blueprint is the robot price list of one blueprint. maxCost holds
// the highest per-turn price of each mineral; owning more robots of a
// kind than that can never help, as only one robot is built per minute.
type d19Blueprint struct {
	oreBot      d19Amount
	clayBot     d19Amount
	obsidianBot d19Amount
	geodeBot    d19Amount
	maxCost     d19Amount
}

// d19Plan is one state of the building schedule search.
type d19Plan struct {
	minerals d19Amount
	robots   d19Amount
	timeLeft int
}

// Day19 — Not Enough Minerals. Each blueprint prices four robot kinds;
// robots harvest their mineral every minute and one robot can be built
// per minute. Part A sums blueprint id times the most geodes crackable
// in 24 minutes; part B multiplies the 32-minute maxima of the first
// three blueprints.
func Day19(lines []string) (puzzle.Solution, error) {
	blueprints, err := d19Blueprints(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	quality := 0
	for i, bp := range blueprints {
		quality += (i + 1) * d19MaxGeodes(bp, 24)
	}

	product := 1
	for _, bp := range blueprints[:min(3, len(blueprints))] {
		product *= d19MaxGeodes(bp, 32)
	}

	return puzzle.Solution{PartA: quality, PartB: product}, nil
}

func d19Blueprints(lines []string) ([]d19Blueprint, error) {
	blueprints := make([]d19Blueprint, 0, len(lines))
	for _, line := range lines {
		nums, err := scan.FixedNumbers(line, 7)
		if err != nil {
			return nil, fmt.Errorf("blueprint %q: %w", line, err)
		}
		bp := d19Blueprint{
			oreBot:      d19Amount{ore: nums[1]},
			clayBot:     d19Amount{ore: nums[2]},
			obsidianBot: d19Amount{ore: nums[3], clay: nums[4]},
			geodeBot:    d19Amount{ore: nums[5], obsidian: nums[6]},
		}
		for _, cost := range []d19Amount{bp.oreBot, bp.clayBot, bp.obsidianBot, bp.geodeBot} {
			bp.maxCost.ore = max(bp.maxCost.ore, cost.ore)
			bp.maxCost.clay = max(bp.maxCost.clay, cost.clay)
			bp.maxCost.obsidian = max(bp.maxCost.obsidian, cost.obsidian)
		}
		blueprints = append(blueprints, bp)
	}

	return blueprints, nil
}

// d19MaxGeodes searches building schedules depth first. A state
// branches on which robot to save up for next; branches that cannot
// optimistically beat the best schedule so far are cut.
func d19MaxGeodes(bp d19Blueprint, minutes int) int {
	best := 0
	stack := []d19Plan{{robots: d19Amount{ore: 1}, timeLeft: minutes}}
	for len(stack) > 0 {
		plan := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Geodes guaranteed by coasting to the end.
		best = max(best, plan.minerals.geode+plan.robots.geode*plan.timeLeft)
		if d19Bound(bp, plan) <= best {
			continue
		}

		if plan.robots.ore < bp.maxCost.ore && plan.timeLeft > 3 {
			if next, ok := d19SaveFor(bp, plan, bp.oreBot, d19Amount{ore: 1}); ok {
				stack = append(stack, next)
			}
		}
		if plan.robots.clay < bp.maxCost.clay && plan.timeLeft > 5 {
			if next, ok := d19SaveFor(bp, plan, bp.clayBot, d19Amount{clay: 1}); ok {
				stack = append(stack, next)
			}
		}
		if plan.robots.obsidian < bp.maxCost.obsidian && plan.timeLeft > 3 {
			if next, ok := d19SaveFor(bp, plan, bp.obsidianBot, d19Amount{obsidian: 1}); ok {
				stack = append(stack, next)
			}
		}
		if plan.timeLeft > 1 {
			if next, ok := d19SaveFor(bp, plan, bp.geodeBot, d19Amount{geode: 1}); ok {
				stack = append(stack, next)
			}
		}
	}

	return best
}

// d19SaveFor advances time until cost is affordable, then builds the
// robot. Returns false when time runs out first.
func d19SaveFor(bp d19Blueprint, plan d19Plan, cost, robot d19Amount) (d19Plan, bool) {
	for plan.timeLeft > 0 {
		if plan.minerals.covers(cost) {
			plan.minerals = plan.minerals.plus(plan.robots).minus(cost)
			plan.robots = plan.robots.plus(robot)
			plan.timeLeft--

			return plan, true
		}
		plan.minerals = plan.minerals.plus(plan.robots)
		plan.timeLeft--
	}

	return d19Plan{}, false
}

// d19Bound overestimates the reachable geodes by granting infinite ore:
// every minute builds a geode robot when affordable, an obsidian or
// clay robot otherwise.
func d19Bound(bp d19Blueprint, plan d19Plan) int {
	for plan.timeLeft > 0 {
		plan.minerals.ore = bp.maxCost.ore

		build := d19Amount{clay: 1}
		cost := d19Amount{}
		switch {
		case plan.minerals.covers(bp.geodeBot):
			build, cost = d19Amount{geode: 1}, bp.geodeBot
		case plan.minerals.covers(bp.obsidianBot):
			build, cost = d19Amount{obsidian: 1}, bp.obsidianBot
		}

		plan.minerals = plan.minerals.plus(plan.robots).minus(cost)
		plan.robots = plan.robots.plus(build)
		plan.timeLeft--
	}

	return plan.minerals.geode
}
