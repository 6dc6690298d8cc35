package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	DatabaseURL     string
	KafkaBrokers    []string
	KafkaAuditTopic string
	LogFormat       string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. DatabaseURL and KafkaBrokers are optional: without them the process
// falls back to in-memory stores and an in-memory audit trail.
func FromEnv() Server {
	addr := os.Getenv("FLIGHTPLANNER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("KAFKA_AUDIT_TOPIC")
	if topic == "" {
		topic = "flightplanner.audit"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		KafkaBrokers:    brokers,
		KafkaAuditTopic: topic,
		LogFormat:       os.Getenv("LOG_FORMAT"),
	}
}
