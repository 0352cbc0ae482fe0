package services

import (
	"slices"
	"strings"
)

// Topic names the canned response a message resolved to.
type Topic string

// Topics, in rule priority order, followed by the fallback.
const (
	TopicFever        Topic = "fever"
	TopicSleep        Topic = "sleep"
	TopicFeeding      Topic = "feeding"
	TopicImmunization Topic = "immunization"
	TopicEmergency    Topic = "emergency"
	TopicThanks       Topic = "thanks"
	TopicGeneral      Topic = "general"
)

// AssistantGreeting opens every conversation with the assistant.
const AssistantGreeting = "Hello! I'm DocGPT, your AI health assistant. I'm here to provide general health information to help parents make informed decisions. Please note that I'm not a replacement for professional medical advice. If you're experiencing a medical emergency, please call 911 or seek immediate medical attention. How can I help you today?"

// Rule maps a set of trigger substrings to a canned reply.
// Triggers must be lowercase.
type Rule struct {
	Topic    Topic
	Triggers []string
	Reply    string
}

// matches reports whether the lowercased text contains any trigger.
func (r Rule) matches(text string) bool {
	for _, trigger := range r.Triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}

// Reply is the outcome of classifying a message.
type Reply struct {
	Topic Topic
	Text  string
}

// Responder picks a canned reply for free-form text: the first rule with a
// trigger contained in the lowercased text wins, otherwise the fallback.
// A Responder is immutable and safe for concurrent use.
type Responder struct {
	rules    []Rule
	fallback Reply
}

// NewResponder creates a Responder from rules in priority order.
func NewResponder(rules []Rule, fallback string) *Responder {
	owned := make([]Rule, len(rules))
	for i, r := range rules {
		triggers := make([]string, len(r.Triggers))
		for j, t := range r.Triggers {
			triggers[j] = strings.ToLower(t)
		}
		owned[i] = Rule{Topic: r.Topic, Triggers: triggers, Reply: r.Reply}
	}
	return &Responder{
		rules:    owned,
		fallback: Reply{Topic: TopicGeneral, Text: fallback},
	}
}

// Respond returns the reply for text. It never fails.
func (r *Responder) Respond(text string) Reply {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.matches(lower) {
			return Reply{Topic: rule.Topic, Text: rule.Reply}
		}
	}
	return r.fallback
}

// Rules returns a copy of the rules in priority order.
func (r *Responder) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	for i, rule := range r.rules {
		out[i] = Rule{Topic: rule.Topic, Triggers: slices.Clone(rule.Triggers), Reply: rule.Reply}
	}
	return out
}

var defaultResponder = NewResponder(healthRules, generalReply)

// DefaultResponder returns the health assistant's shared Responder.
func DefaultResponder() *Responder {
	return defaultResponder
}

var healthRules = []Rule{
	{
		Topic:    TopicFever,
		Triggers: []string{"fever"},
		Reply:    "For fever management:\n\n• Normal temperature: 98.6°F (37°C)\n• Low-grade fever: 100.4°F - 102°F (38°C - 38.9°C)\n• High fever: Above 102°F (38.9°C)\n\nFor infants under 3 months with any fever, contact your pediatrician immediately. For older children, monitor symptoms and keep them hydrated. Use acetaminophen or ibuprofen as recommended by your doctor. Seek medical attention if fever persists beyond 3 days or is accompanied by severe symptoms.",
	},
	{
		Topic:    TopicSleep,
		Triggers: []string{"sleep", "nap"},
		Reply:    "Sleep needs vary by age:\n\n• Newborns (0-3 months): 14-17 hours\n• Infants (4-11 months): 12-15 hours\n• Toddlers (1-2 years): 11-14 hours\n• Preschoolers (3-5 years): 10-13 hours\n\nEstablish consistent bedtime routines, keep the room dark and cool, and avoid screens before bed. Remember, every child is different, and these are general guidelines.",
	},
	{
		Topic:    TopicFeeding,
		Triggers: []string{"food", "eat", "nutrition"},
		Reply:    "For introducing solid foods:\n\n• Start around 6 months when baby shows readiness signs\n• Begin with single-ingredient purees\n• Wait 3-5 days between new foods to watch for allergies\n• Include iron-rich foods like meat and fortified cereals\n• Avoid honey before age 1\n\nOffer a variety of nutritious foods and let your child's appetite guide portion sizes. Consult your pediatrician about specific dietary concerns.",
	},
	{
		Topic:    TopicImmunization,
		Triggers: []string{"vaccine", "immunization"},
		Reply:    "Vaccines are one of the most important ways to protect your child's health. The CDC-recommended schedule is designed to provide immunity when children are most vulnerable. Common vaccines include:\n\n• DTaP (Diphtheria, Tetanus, Pertussis)\n• MMR (Measles, Mumps, Rubella)\n• Polio\n• Hepatitis B\n• Hib (Haemophilus influenzae type b)\n\nYour pediatrician will provide a personalized schedule. Vaccines are safe, effective, and thoroughly tested.",
	},
	{
		Topic:    TopicEmergency,
		Triggers: []string{"emergency", "urgent"},
		Reply:    "⚠️ If you're experiencing a medical emergency:\n\n• Call 911 immediately\n• Go to the nearest emergency room\n• Call your local poison control center (1-800-222-1222) for poisoning\n\nSeek immediate care for:\n• Difficulty breathing\n• Uncontrolled bleeding\n• Loss of consciousness\n• Severe allergic reactions\n• High fever in infants under 3 months\n• Seizures\n• Severe head injuries\n\nRemember: I'm an AI assistant and cannot diagnose emergencies. Always err on the side of caution.",
	},
	{
		Topic:    TopicThanks,
		Triggers: []string{"thank"},
		Reply:    "You're welcome! Remember, while I can provide general health information, always consult with your pediatrician or healthcare provider for specific medical advice, diagnosis, or treatment. Is there anything else I can help you with today?",
	},
}

const generalReply = "Thank you for your question. I can provide general health information on topics like:\n\n• Childhood illnesses and symptoms\n• Nutrition and feeding\n• Sleep patterns\n• Developmental milestones\n• Vaccines and preventive care\n• Safety tips\n\nPlease remember that I provide general information and cannot diagnose conditions or replace professional medical advice. For specific concerns about your child, please consult your pediatrician. \n\nCould you please provide more details about what you'd like to know?"
