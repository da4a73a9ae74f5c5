package services

// DeliveryPreferences are the independent checkbox flags offered at
// checkout. They render into the fixed instruction lines shown to the
// kitchen and the delivery person.
type DeliveryPreferences struct {
	DontRingBell bool `json:"dont_ring_bell"`
	DropAtDoor   bool `json:"drop_at_door"`
	AvoidCalling bool `json:"avoid_calling"`
}

func (p DeliveryPreferences) Instructions() []string {
	var lines []string
	if p.DontRingBell {
		lines = append(lines, "Don't ring bell, just call or text")
	}
	if p.DropAtDoor {
		lines = append(lines, "Drop at the door, will pay now, and text me")
	}
	if p.AvoidCalling {
		lines = append(lines, "Avoid Calling")
	}
	return lines
}
