package redisrepo

import "fmt"

// Session records are written by the auth service; this service only reads
// them and refreshes their TTL.
const SESSION_KEY = "session:%s" // <token>

func SessionKey(token string) string {
	return fmt.Sprintf(SESSION_KEY, token)
}
