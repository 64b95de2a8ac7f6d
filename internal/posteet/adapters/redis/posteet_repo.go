// Package redis реализует хранилище заметок на Redis.
//
// Коллекция каждого владельца хранится в хэше posteet:{owner}:notes,
// где поле - десятичный postit_id, значение - JSON документ заметки.
// Идентификаторы выдает атомарный счетчик posteet:{owner}:seq, поэтому
// конкурентные вставки одного владельца не могут получить одинаковый id,
// а удаление не освобождает использованные id.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/ports/repositories"
	"posteet/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrNextID    = "failed to reserve next posteet id"
	ErrStore     = "failed to store posteet"
	ErrLoad      = "failed to load posteet"
	ErrLoadAll   = "failed to load posteet collection"
	ErrRemove    = "failed to remove posteet"
	ErrUnmarshal = "failed to decode stored posteet"
)

// PosteetRepository реализует интерфейс repositories.PosteetRepository.
type PosteetRepository struct {
	client *redis.Client
}

// NewPosteetRepository создает новый репозиторий заметок.
func NewPosteetRepository(client *redis.Client) repositories.PosteetRepository {
	return &PosteetRepository{client: client}
}

func notesKey(ownerID string) string {
	return "posteet:" + ownerID + ":notes"
}

func seqKey(ownerID string) string {
	return "posteet:" + ownerID + ":seq"
}

func fieldOf(postitID int64) string {
	return strconv.FormatInt(postitID, 10)
}

// Insert назначает заметке следующий id владельца и сохраняет ее.
func (r *PosteetRepository) Insert(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("repository", "posteet"), zap.String("method", "Insert"))

	id, err := r.client.Incr(ctx, seqKey(ownerID)).Result()
	if err != nil {
		log.Error(ctx, ErrNextID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrNextID, err)
	}

	stored := *posteet
	stored.PostitID = id

	doc, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrStore, err)
	}

	if err := r.client.HSet(ctx, notesKey(ownerID), fieldOf(id), doc).Err(); err != nil {
		log.Error(ctx, ErrStore, zap.Error(err), zap.Int64("postit_id", id))
		return nil, fmt.Errorf("%s: %w", ErrStore, err)
	}

	log.Debug(ctx, "posteet stored", zap.Int64("postit_id", id))
	return &stored, nil
}

// ListByOwner возвращает все заметки владельца, отсортированные по postit_id.
// Пустая коллекция не является ошибкой.
func (r *PosteetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("repository", "posteet"), zap.String("method", "ListByOwner"))

	docs, err := r.client.HGetAll(ctx, notesKey(ownerID)).Result()
	if err != nil {
		log.Error(ctx, ErrLoadAll, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrLoadAll, err)
	}

	posteets := make([]*entities.Posteet, 0, len(docs))
	for field, doc := range docs {
		var p entities.Posteet
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			log.Error(ctx, ErrUnmarshal, zap.Error(err), zap.String("field", field))
			return nil, fmt.Errorf("%s: %w", ErrUnmarshal, err)
		}
		posteets = append(posteets, &p)
	}

	sort.Slice(posteets, func(i, j int) bool {
		return posteets[i].PostitID < posteets[j].PostitID
	})

	return posteets, nil
}

// FindByID находит заметку по id в коллекции владельца.
func (r *PosteetRepository) FindByID(ctx context.Context, ownerID string, postitID int64) (*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("repository", "posteet"), zap.String("method", "FindByID"))

	doc, err := r.client.HGet(ctx, notesKey(ownerID), fieldOf(postitID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug(ctx, "posteet not found", zap.Int64("postit_id", postitID))
			return nil, entities.ErrPosteetNotFound
		}
		log.Error(ctx, ErrLoad, zap.Error(err), zap.Int64("postit_id", postitID))
		return nil, fmt.Errorf("%s: %w", ErrLoad, err)
	}

	var p entities.Posteet
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		log.Error(ctx, ErrUnmarshal, zap.Error(err), zap.Int64("postit_id", postitID))
		return nil, fmt.Errorf("%s: %w", ErrUnmarshal, err)
	}

	return &p, nil
}

// Update перезаписывает существующую заметку владельца.
func (r *PosteetRepository) Update(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("repository", "posteet"), zap.String("method", "Update"))

	exists, err := r.client.HExists(ctx, notesKey(ownerID), fieldOf(posteet.PostitID)).Result()
	if err != nil {
		log.Error(ctx, ErrLoad, zap.Error(err), zap.Int64("postit_id", posteet.PostitID))
		return nil, fmt.Errorf("%s: %w", ErrLoad, err)
	}
	if !exists {
		log.Debug(ctx, "posteet not found", zap.Int64("postit_id", posteet.PostitID))
		return nil, entities.ErrPosteetNotFound
	}

	doc, err := json.Marshal(posteet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrStore, err)
	}

	if err := r.client.HSet(ctx, notesKey(ownerID), fieldOf(posteet.PostitID), doc).Err(); err != nil {
		log.Error(ctx, ErrStore, zap.Error(err), zap.Int64("postit_id", posteet.PostitID))
		return nil, fmt.Errorf("%s: %w", ErrStore, err)
	}

	return posteet, nil
}

// Delete удаляет заметку из коллекции владельца.
func (r *PosteetRepository) Delete(ctx context.Context, ownerID string, postitID int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "posteet"), zap.String("method", "Delete"))

	removed, err := r.client.HDel(ctx, notesKey(ownerID), fieldOf(postitID)).Result()
	if err != nil {
		log.Error(ctx, ErrRemove, zap.Error(err), zap.Int64("postit_id", postitID))
		return fmt.Errorf("%s: %w", ErrRemove, err)
	}
	if removed == 0 {
		log.Debug(ctx, "posteet not found", zap.Int64("postit_id", postitID))
		return entities.ErrPosteetNotFound
	}

	log.Debug(ctx, "posteet removed", zap.Int64("postit_id", postitID))
	return nil
}
