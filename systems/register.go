// Package systems holds the four periodic activities that drive a session
package systems

import "github.com/lixenwraith/snake-monster/engine"

// RegisterAll adds the four session systems to g in arming order
func RegisterAll(g *engine.Game) {
	g.AddSystem(NewSnakeSystem(g.World))
	g.AddSystem(NewMonsterSystem(g.World))
	g.AddSystem(NewFoodSystem())
	g.AddSystem(NewStatusSystem())
}
