package config

const (
	// DeadLetterFileName is the JSONL file undeliverable events are written to, inside LogDir
	DeadLetterFileName = "event_deadletter.jsonl"
)
