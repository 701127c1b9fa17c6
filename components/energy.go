package components

import "github.com/yohamta/donburi"

type EnergyData struct {
	Current float64
	Max     float64
}

var Energy = donburi.NewComponentType[EnergyData]()
