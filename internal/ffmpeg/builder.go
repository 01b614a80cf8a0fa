package ffmpeg

import (
	"fmt"
	"strings"

	"github.com/tempocut/tempocut/internal/segment"
)

// concatLabel names the concat output when atempo stages follow it.
const concatLabel = "aconcat"

// BuildFilterGraph assembles the filter_complex text for the edit. Each
// segment becomes an atrim+asetpts step labeled s0..sN over the source audio
// stream, followed by a concat step; when tempo stages apply, the concat
// feeds a chain of atempo steps whose final label is "out", otherwise the
// concat itself is labeled "out". Steps are joined with ";" in emission
// order. Label names and 6-decimal formatting are part of the external
// contract and must not change.
func BuildFilterGraph(segments []segment.Segment, chain []float64, applyTempo bool) string {
	parts := make([]string, 0, len(segments)+1+len(chain))
	labels := make([]string, 0, len(segments))
	for i, seg := range segments {
		label := fmt.Sprintf("s%d", i)
		parts = append(parts, fmt.Sprintf(
			"[0:a]atrim=start=%.6f:end=%.6f,asetpts=PTS-STARTPTS[%s]",
			seg.Start, seg.End, label))
		labels = append(labels, "["+label+"]")
	}

	inputs := strings.Join(labels, "")
	if !applyTempo {
		parts = append(parts, fmt.Sprintf("%sconcat=n=%d:v=0:a=1[out]", inputs, len(labels)))
		return strings.Join(parts, ";")
	}

	parts = append(parts, fmt.Sprintf("%sconcat=n=%d:v=0:a=1[%s]", inputs, len(labels), concatLabel))
	current := concatLabel
	for i, factor := range chain {
		next := "out"
		if i < len(chain)-1 {
			next = fmt.Sprintf("tempo%d", i)
		}
		parts = append(parts, fmt.Sprintf("[%s]atempo=%.6f[%s]", current, factor, next))
		current = next
	}
	return strings.Join(parts, ";")
}

// BuildArgs constructs the complete engine argument slice: resolved binary,
// quiet and overwrite flags, input, filter graph, output mapping, video
// drop, audio codec, output path.
func BuildArgs(ffmpegPath, inputPath, outputPath, filterGraph, audioCodec string) []string {
	return []string{
		ffmpegPath,
		"-hide_banner",
		"-y",
		"-i", inputPath,
		"-filter_complex", filterGraph,
		"-map", "[out]",
		"-vn",
		"-c:a", audioCodec,
		outputPath,
	}
}
