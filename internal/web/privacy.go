package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
)

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate IP hashing salt:", err)
	}
	return hex.EncodeToString(b)
}

// hashIP returns a salted, truncated digest of ip so logs never carry raw
// client addresses. The digest is stable for the life of the process.
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.ipSalt))
	return hex.EncodeToString(sum[:])[:16]
}
