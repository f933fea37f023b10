package tui

import "github.com/MKhiriev/go-scene-outbox/models"

// confirmModel asks before a queue is cleared. An empty streams list means
// every stream.
type confirmModel struct {
	streams []models.Stream
}

func (m confirmModel) View() string {
	target := "all queued items"
	if len(m.streams) == 1 {
		target = "the " + m.streams[0].String() + " queue"
	}
	return overlayBoxStyle.Render("Clear " + target + "?\n\ny yes    n no")
}
