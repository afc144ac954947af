package model

// Track is a static descriptor of an ambient audio track.
type Track struct {
	Name   string
	Emoji  string
	Source string
}

// Quote is a motivational quote with its attribution.
type Quote struct {
	Text   string
	Author string
}

// Strategy is one card of the self-care toolkit.
type Strategy struct {
	Emoji       string
	Title       string
	Description string
}
