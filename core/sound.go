package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat     SoundType = iota // Food consumed
	SoundContact                  // Monster brushed the body
	SoundLose                     // Monster reached the head
	SoundWin                      // Maximum length reached
	SoundTypeCount
)
