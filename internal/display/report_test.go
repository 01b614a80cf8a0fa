package display

import (
	"testing"
)

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"plain args pass through",
			[]string{"ffmpeg", "-hide_banner", "-y", "-i", "in.mp3"},
			"ffmpeg -hide_banner -y -i in.mp3",
		},
		{
			"filter graph gets quoted",
			[]string{"-filter_complex", "[0:a]atrim=start=0.000000:end=5.000000,asetpts=PTS-STARTPTS[s0];[s0]concat=n=1:v=0:a=1[out]"},
			"-filter_complex '[0:a]atrim=start=0.000000:end=5.000000,asetpts=PTS-STARTPTS[s0];[s0]concat=n=1:v=0:a=1[out]'",
		},
		{
			"path with spaces",
			[]string{"/music/My Mix.mp3"},
			"'/music/My Mix.mp3'",
		},
		{
			"embedded single quote",
			[]string{"it's.mp3"},
			`'it'"'"'s.mp3'`,
		},
		{
			"map label",
			[]string{"-map", "[out]"},
			"-map '[out]'",
		},
		{
			"empty argument",
			[]string{""},
			"''",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCommand(tt.args); got != tt.want {
				t.Errorf("FormatCommand(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
