package stream

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Event is published on the events topic.
type Event struct {
	Type     string  `json:"type"`
	Reversed bool    `json:"reversed,omitempty"`
	Value    float64 `json:"value,omitempty"`
}

// ControlMessage is accepted on the control topic. A bare command name is
// accepted as well.
type ControlMessage struct {
	Command string `json:"command"`
}

// Streamer that streams RGB data frames to an LED matrix over MQTT and
// takes playback commands from the control topic.
type Streamer struct {
	config     Config
	client     mqtt.Client
	Controller *Controller
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.Controller = NewController(config, 0, s)
	return s
}

// SendFrame sends a frame as binary over MQTT to the LED matrix.
func (s *Streamer) SendFrame(f *Frame) {
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// OnPassComplete implements scan.Observer.
func (s *Streamer) OnPassComplete(reversed bool) {
	s.publishEvent(Event{Type: "complete", Reversed: reversed})
}

// OnProgress implements scan.Observer. Progress is not published, the
// frames already carry it.
func (s *Streamer) OnProgress(value float64) {}

// OnThresholdReached implements scan.Observer.
func (s *Streamer) OnThresholdReached(value float64) {
	s.publishEvent(Event{Type: "threshold", Value: value})
}

func (s *Streamer) publishEvent(e Event) {
	if s.config.Mqtt.Topics.Events == "" {
		return
	}
	b, err := json.Marshal(e)
	if err != nil {
		log.Println(err)
		return
	}
	// Events are sent from the frame loop, so don't block on delivery.
	s.client.Publish(s.config.Mqtt.Topics.Events, 0, false, b)
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	name := strings.TrimSpace(string(msg.Payload()))
	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err == nil {
		name = message.Command
	}

	cmd, err := ParseCommand(name)
	if err != nil {
		log.Println(err)
		return
	}
	if err := s.Controller.Submit(cmd); err != nil {
		log.Printf("Dropping %s: %v", cmd, err)
	}
}

// Subscribe listens for commands on the control topic.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessage)
	if token.WaitTimeout(10*time.Second) && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run(ctx context.Context) {
	if s.config.AutoStart != "" {
		if cmd, err := ParseCommand(s.config.AutoStart); err != nil {
			log.Printf("Ignoring autoStart: %v", err)
		} else if err := s.Controller.Submit(cmd); err != nil {
			log.Println(err)
		}
	}
	s.Controller.Run(ctx, s)
}
