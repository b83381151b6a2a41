package notify

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
)

// MQTTPublisher tells subscribed screens to refetch a row.
type MQTTPublisher struct {
	client mqtt.Client
	qos    byte
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// NewMQTTPublisher connects to brokerURL (e.g. tcp://localhost:1883).
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client, qos: 1}, nil
}

// Topic is where screens showing a row listen for refreshes. A reorder of
// the row collection goes to the shared rows topic.
func Topic(ev engine.RowEvent) string {
	if ev.RowID == uuid.Nil {
		return "rows/updated"
	}
	return fmt.Sprintf("rows/%s/updated", ev.RowID)
}

func (p *MQTTPublisher) RowChanged(ctx context.Context, ev engine.RowEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal row event: %w", err)
	}

	topic := Topic(ev)
	token := p.client.Publish(topic, p.qos, false, body)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Str("action", string(ev.Action)).Msg("row change sent via MQTT")
	return nil
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
	log.Info().Msg("MQTT client disconnected")
}
