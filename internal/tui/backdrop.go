package tui

import (
	"hash/fnv"
	"strings"
)

// Backdrop draws the decorative layer behind the panel.
type Backdrop interface {
	Render(width, height int) string
}

// SceneBackdrop scatters faint dots whose layout depends only on the scene id.
type SceneBackdrop struct {
	seed uint32
}

func NewSceneBackdrop(scene string) SceneBackdrop {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scene))
	return SceneBackdrop{seed: h.Sum32()}
}

func (b SceneBackdrop) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	state := b.seed | 1
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			// xorshift32
			state ^= state << 13
			state ^= state >> 17
			state ^= state << 5
			if state%37 == 0 {
				sb.WriteString("·")
			} else {
				sb.WriteByte(' ')
			}
		}
		lines[y] = backdropStyle.Render(sb.String())
	}
	return strings.Join(lines, "\n")
}
