package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"cropwise/entities"
	"cropwise/pkg/chat"
	repo "cropwise/pkg/chat/repository"
	"cropwise/pkg/chat/service"
)

type chatSvc struct {
	r   repo.ChatRepository
	bot chat.Responder
	now func() time.Time
}

func NewChatService(r repo.ChatRepository, bot chat.Responder) service.ChatService {
	if bot == nil {
		bot = chat.NewKeywordResponder()
	}
	return &chatSvc{r: r, bot: bot, now: time.Now}
}

func (s *chatSvc) Send(userKey, text string) (*service.Exchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, service.ErrEmptyMessage
	}
	at := s.now()
	q := entities.ChatMessage{UserKey: userKey, Text: text, IsUser: true, Timestamp: at}
	if err := s.r.Append(&q); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	// the answer always sorts after its question
	a := entities.ChatMessage{UserKey: userKey, Text: s.bot.Reply(text), Timestamp: at.Add(time.Millisecond)}
	if err := s.r.Append(&a); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}
	return &service.Exchange{Question: q, Answer: a}, nil
}

func (s *chatSvc) History(userKey string) ([]entities.ChatMessage, error) {
	list, err := s.r.Recent(userKey, service.HistoryLimit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

func (s *chatSvc) Clear(userKey string) error { return s.r.Clear(userKey) }
