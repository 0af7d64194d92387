package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/storefront/pkg/messaging"
)

// FavoriteToggledEvent is emitted after a favorites set was saved.
type FavoriteToggledEvent struct {
	Key       string    `json:"key"`
	ItemID    int64     `json:"item_id"`
	Favorite  bool      `json:"favorite"`
	ToggledAt time.Time `json:"toggled_at"`
}

func (e FavoriteToggledEvent) Subject() string {
	return messaging.FavoritesToggledSubject
}

func (e FavoriteToggledEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
