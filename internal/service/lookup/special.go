package lookup

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dictionary-bot/internal/domain"
)

type personalityType struct {
	name   string
	traits string
}

// personalityTypes are the sixteen MBTI codes answered without a network call.
var personalityTypes = map[string]personalityType{
	"INTJ": {"Architect", "Introverted, Intuitive, Thinking, Judging"},
	"INTP": {"Logician", "Introverted, Intuitive, Thinking, Perceiving"},
	"ENTJ": {"Commander", "Extroverted, Intuitive, Thinking, Judging"},
	"ENTP": {"Debater", "Extroverted, Intuitive, Thinking, Perceiving"},
	"INFJ": {"Advocate", "Introverted, Intuitive, Feeling, Judging"},
	"INFP": {"Mediator", "Introverted, Intuitive, Feeling, Perceiving"},
	"ENFJ": {"Protagonist", "Extroverted, Intuitive, Feeling, Judging"},
	"ENFP": {"Campaigner", "Extroverted, Intuitive, Feeling, Perceiving"},
	"ISTJ": {"Logistician", "Introverted, Sensing, Thinking, Judging"},
	"ISFJ": {"Defender", "Introverted, Sensing, Feeling, Judging"},
	"ESTJ": {"Executive", "Extroverted, Sensing, Thinking, Judging"},
	"ESFJ": {"Consul", "Extroverted, Sensing, Feeling, Judging"},
	"ISTP": {"Virtuoso", "Introverted, Sensing, Thinking, Perceiving"},
	"ISFP": {"Adventurer", "Introverted, Sensing, Feeling, Perceiving"},
	"ESTP": {"Entrepreneur", "Extroverted, Sensing, Thinking, Perceiving"},
	"ESFP": {"Entertainer", "Extroverted, Sensing, Feeling, Perceiving"},
}

const (
	mbtiEtymology = "The Myers-Briggs Type Indicator (MBTI) was developed by Isabel Myers and her mother " +
		"Katherine Briggs based on Carl Jung's theory of personality types."
	mbtiBackground = "Part of the Myers-Briggs Type Indicator (MBTI), a personality type system based on " +
		"Carl Jung's theory of psychological types."
)

var mbtiUsageNotes = []string{
	"MBTI types should not be used to discriminate or stereotype individuals, as personality is complex " +
		"and can vary based on context and personal growth.",
	"While MBTI is widely used in personal development and career counseling, it is important to note " +
		"that it is just one of many personality assessment tools.",
}

// specialRecords is built once from personalityTypes and never mutated.
var specialRecords = buildSpecialRecords()

func buildSpecialRecords() map[string]domain.WordRecord {
	records := make(map[string]domain.WordRecord, len(personalityTypes))
	for key, pt := range personalityTypes {
		records[key] = domain.NewWordRecord(
			[]string{
				fmt.Sprintf("MBTI Personality Type: %s - Known as '%s'. Stands for: %s", key, pt.name, pt.traits),
				mbtiBackground,
			},
			[]string{
				fmt.Sprintf("As an %s, they excel at analytical problem-solving and strategic thinking.", key),
				fmt.Sprintf("The %s personality type is often found in careers that match their %s traits.",
					key, strings.ToLower(pt.name)),
			},
			mbtiEtymology,
			mbtiUsageNotes,
		)
	}
	return records
}

// specialCase returns a copy of the static record for query, if any.
func specialCase(query string) (domain.WordRecord, bool) {
	rec, ok := specialRecords[domain.SpecialKey(query)]
	if !ok {
		return domain.WordRecord{}, false
	}
	return rec.Clone(), true
}
