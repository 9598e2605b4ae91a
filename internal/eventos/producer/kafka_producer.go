package producer

import (
	"context"
	"encoding/json"

	sharedkafka "github.com/radieske/eventos-service/internal/shared/kafka"
	"github.com/radieske/eventos-service/pkg/contracts/events"
)

// KafkaPublisher publica mudanças de eventos no tópico evento_changes,
// chaveadas pelo id do evento pra manter ordem por registro na partição
type KafkaPublisher struct {
	Writer *sharedkafka.Writer
	Topic  string
}

func NewKafkaPublisher(w *sharedkafka.Writer, topic string) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Topic: topic}
}

func (p *KafkaPublisher) PublishEventoChanged(ctx context.Context, e events.EventoChanged) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return sharedkafka.WriteJSON(ctx, p.Writer, e.EventoID, b)
}
