package model

// Stats holds coarse operational counters derived from the record store.
// All fields are best-effort; store failures yield the zero value.
type Stats struct {
	TotalSymbols      int64  `json:"total_symbols"`
	MessagesProcessed int64  `json:"messages_processed"`
	LastUpdate        string `json:"last_update"`
	RedisMemory       string `json:"redis_memory"`
}
