package tui

import (
	"fmt"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/controller"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
)

func describeNotification(n controller.Notification) string {
	switch {
	case n.Kind == controller.EpicCreated && n.Epic != nil:
		return fmt.Sprintf("created epic %d on %s", n.Epic.ID, datemath.Format(n.Epic.StartDate))
	case n.Kind == controller.EpicUpdated && n.Epic != nil:
		return fmt.Sprintf("epic %d now %s %s %s", n.Epic.ID,
			datemath.Format(n.Epic.StartDate), glyphArrow(), datemath.Format(datemath.AddDays(n.Epic.EndDate, -1)))
	case n.Kind == controller.PathCreated && n.Path != nil:
		return fmt.Sprintf("epic %d %s epic %d", n.Path.From, glyphArrow(), n.Path.To)
	default:
		return string(n.Kind)
	}
}
