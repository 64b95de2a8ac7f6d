package dto

import "posteet/internal/posteet/domain/entities"

// PosteetContentRequest содержит данные заметки для создания и обновления.
type PosteetContentRequest struct {
	Content   string  `json:"content"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Date      string  `json:"date"`
}

// ToEntity преобразует запрос в доменную сущность без назначенного id.
func (r *PosteetContentRequest) ToEntity() *entities.Posteet {
	return &entities.Posteet{
		Content:   r.Content,
		PositionX: r.PositionX,
		PositionY: r.PositionY,
		Date:      r.Date,
	}
}

// PosteetResponse содержит представление заметки в API.
type PosteetResponse struct {
	PostitID  int64   `json:"postit_id"`
	Content   string  `json:"content"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Date      string  `json:"date"`
}

// NewPosteetResponse преобразует доменную сущность в ответ API.
func NewPosteetResponse(p *entities.Posteet) *PosteetResponse {
	return &PosteetResponse{
		PostitID:  p.PostitID,
		Content:   p.Content,
		PositionX: p.PositionX,
		PositionY: p.PositionY,
		Date:      p.Date,
	}
}

// NewPosteetListResponse преобразует срез доменных сущностей в ответ API.
func NewPosteetListResponse(posteets []*entities.Posteet) []*PosteetResponse {
	responses := make([]*PosteetResponse, 0, len(posteets))
	for _, p := range posteets {
		responses = append(responses, NewPosteetResponse(p))
	}
	return responses
}
