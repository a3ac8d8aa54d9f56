package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/pagecraft/pages-go/lib/table"
)

// TableUpdateMessage is broadcast after a recalculation pass so subscribed
// surfaces can refresh the affected cells.
type TableUpdateMessage struct {
	Type    string             `json:"type"`
	PageId  string             `json:"pageId"`
	Updates []table.CellUpdate `json:"updates"`
}

// Notifier publishes recalculation outcomes onto the hub.
type Notifier struct {
	hub    *Hub
	logger *zap.SugaredLogger
}

func NewNotifier(hub *Hub, logger *zap.SugaredLogger) *Notifier {
	return &Notifier{hub: hub, logger: logger}
}

// BroadcastUpdates sends the given cell updates to every client of the page.
// Empty update sets are skipped.
func (n *Notifier) BroadcastUpdates(pageId string, updates []table.CellUpdate) {
	if len(updates) == 0 {
		return
	}

	payload, err := json.Marshal(TableUpdateMessage{
		Type:    "tableUpdate",
		PageId:  pageId,
		Updates: updates,
	})
	if err != nil {
		n.logger.Errorw("marshalling table update", "page", pageId, "err", err)
		return
	}

	n.hub.Broadcast <- PageMessage{PageId: pageId, Payload: payload}
}
