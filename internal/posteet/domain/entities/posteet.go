package entities

import "errors"

// ErrPosteetNotFound возвращается, когда заметка отсутствует в коллекции владельца.
var ErrPosteetNotFound = errors.New("posteet not found")

// Posteet представляет заметку на двумерном холсте.
// PostitID уникален только в пределах коллекции владельца.
type Posteet struct {
	PostitID  int64   `json:"postit_id"`
	Content   string  `json:"content"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Date      string  `json:"date"`
}
