// Package chatbot answers free-text messages with canned, keyword-matched replies.
package chatbot

import "strings"

const defaultReply = "I'm your AI health assistant. Please consult a doctor for urgent symptoms."

type rule struct {
	keyword string
	reply   string
}

// Later rules win when a message matches more than one keyword.
var rules = []rule{
	{"fever", "You might have an infection. Stay hydrated and consult a doctor."},
	{"headache", "Try to rest and avoid screen time. If it persists, seek medical advice."},
}

// Reply returns the canned answer for message.
func Reply(message string) string {
	msg := strings.ToLower(message)
	reply := defaultReply
	for _, r := range rules {
		if strings.Contains(msg, r.keyword) {
			reply = r.reply
		}
	}
	return reply
}
