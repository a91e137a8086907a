package game

import (
	"math/rand"
	"time"
)

var foodRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// SpawnFood returns a command that draws a uniform random cell not covered
// by the given body. The draw retries until it hits free ground, so food
// never appears underneath the snake.
func SpawnFood(occupied Snake) Cmd {
	return func() Intent {
		return PlaceFood{At: randomFood(foodRand, occupied)}
	}
}

func randomFood(r *rand.Rand, occupied Snake) Point {
	for {
		p := Point{r.Intn(GridSize), r.Intn(GridSize)}
		if !occupied.Contains(p) {
			return p
		}
	}
}
