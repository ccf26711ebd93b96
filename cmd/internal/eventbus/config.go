package eventbus

import (
	"os"
	"strings"
)

// LookupBrokers 는 KAFKA_BOOTSTRAP_SERVERS 를 읽는다. 비어 있으면 ok=false 이며
// API 서버는 이 경우 NopBus 로 동작한다.
func LookupBrokers() (string, bool) {
	v := strings.TrimSpace(os.Getenv("KAFKA_BOOTSTRAP_SERVERS"))
	return v, v != ""
}

// GetBrokers returns Kafka bootstrap servers from env KAFKA_BOOTSTRAP_SERVERS.
// notifier/retryworker 처럼 Kafka 없이는 의미가 없는 프로세스에서 사용한다.
func GetBrokers() string {
	v, ok := LookupBrokers()
	if !ok {
		panic("KAFKA_BOOTSTRAP_SERVERS environment variable is required")
	}
	return v
}

// GetGroupID returns consumer group id from env KAFKA_GROUP_ID (default "flight-booking").
func GetGroupID() string {
	v := strings.TrimSpace(os.Getenv("KAFKA_GROUP_ID"))
	if v == "" {
		return "flight-booking"
	}
	return v
}
