package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"vdpcza/internal/models/response_models"
	"vdpcza/pkg/ai"
)

const (
	ChatGreeting = "¡Hola! Soy tu acompañante de vdpcza. ¿En qué puedo ayudarte hoy?"

	chatSourceCanned = "canned"

	chatSystemPrompt = "Eres el acompañante cariñoso de una pareja dentro de su app privada vdpcza. " +
		"Responde siempre en español, con calidez, en dos o tres frases como máximo."
)

type cannedReply struct {
	contains string
	reply    string
}

var cannedReplies = []cannedReply{
	{"te quiero", "¡Y yo a vosotros! Sois mi pareja favorita del universo digital. ✨"},
	{"hola", "¡Hola de nuevo! Recordaba cuando me contaste sobre vuestro primer viaje... ¡qué tiempos!"},
}

const cannedDefault = "¡Qué lindo lo que dices! Me encantaría ayudarte con eso, pero por ahora sigo aprendiendo sobre vuestra historia. ❤️"

// CannedReply picks the built-in answer for a message. Earlier entries win.
func CannedReply(message string) string {
	lower := strings.ToLower(message)
	for _, c := range cannedReplies {
		if strings.Contains(lower, c.contains) {
			return c.reply
		}
	}
	return cannedDefault
}

type ChatServiceInterface interface {
	Greeting() response_models.ChatResponse
	Reply(ctx context.Context, message string) response_models.ChatResponse
}

type ChatService struct {
	client  ai.ChatClientInterface
	timeout time.Duration
	log     *zap.Logger
}

// NewChatService accepts a nil client, in which case every reply is canned.
func NewChatService(client ai.ChatClientInterface, timeout time.Duration, log *zap.Logger) *ChatService {
	return &ChatService{client: client, timeout: timeout, log: log.Named("chat")}
}

func (s *ChatService) Greeting() response_models.ChatResponse {
	return response_models.ChatResponse{Reply: ChatGreeting, Source: chatSourceCanned}
}

func (s *ChatService) Reply(ctx context.Context, message string) response_models.ChatResponse {
	if s.client == nil {
		return response_models.ChatResponse{Reply: CannedReply(message), Source: chatSourceCanned}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.client.Reply(ctx, chatSystemPrompt, message)
	if err != nil || reply == "" {
		s.log.Warn("chat provider failed, using canned reply", zap.String("provider", s.client.Name()), zap.Error(err))
		return response_models.ChatResponse{Reply: CannedReply(message), Source: chatSourceCanned}
	}
	return response_models.ChatResponse{Reply: reply, Source: s.client.Name()}
}
