package player

import "github.com/idilsaglam/safespace/internal/model"

var defaultTracks = []model.Track{
	{Name: "Calm Meditation", Emoji: "🌅", Source: "https://cdn.pixabay.com/download/audio/2022/05/27/audio_1808fbf07a.mp3"},
	{Name: "Peaceful Rain", Emoji: "🌧", Source: "https://cdn.pixabay.com/download/audio/2022/03/24/audio_017a2186d4.mp3"},
	{Name: "Ocean Waves", Emoji: "🌊", Source: "https://cdn.pixabay.com/download/audio/2021/08/09/audio_dc39bde808.mp3"},
	{Name: "Forest Ambience", Emoji: "🌲", Source: "https://cdn.pixabay.com/download/audio/2022/01/18/audio_d0fd6a9524.mp3"},
	{Name: "Soft Piano", Emoji: "🎹", Source: "https://cdn.pixabay.com/download/audio/2022/03/09/audio_2dbe9922c9.mp3"},
}

// DefaultTracks is the built-in ambient track list.
func DefaultTracks() []model.Track { return append([]model.Track(nil), defaultTracks...) }
