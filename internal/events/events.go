package events

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/OpenHoursHQ/openhours/internal/hours"
)

// Storefront displays subscribe to openhours/business/<id> and refresh
// whenever the schedule behind them changes.

var mqttClient mqtt.Client

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// Init connects the publisher. Leaving the broker URL empty keeps the
// publisher disabled; publishes then become no-ops.
func Init(brokerURL, clientID string) error {
	if brokerURL == "" {
		return nil
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return nil
}

type hoursUpdated struct {
	BusinessID int                `json:"business_id"`
	Hours      hours.WorkingHours `json:"hours"`
}

// PublishHoursUpdated notifies subscribers that a business's schedule
// changed. Failures are logged, never surfaced to the request path.
func PublishHoursUpdated(businessID int, working hours.WorkingHours) {
	if mqttClient == nil {
		return
	}
	payload, err := json.Marshal(hoursUpdated{BusinessID: businessID, Hours: working})
	if err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("failed to encode hours event")
		return
	}
	topic := fmt.Sprintf("openhours/business/%d", businessID)
	if token := mqttClient.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish hours event")
	}
}
