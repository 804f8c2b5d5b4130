package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/dictionary-bot/internal/presenter"
)

// Discord embed limits, in characters.
const (
	maxTitleLen      = 256
	maxFieldNameLen  = 256
	maxFieldValueLen = 1024
	maxFooterLen     = 2048
	maxFields        = 25
)

// ToEmbed converts a rendered document into a Discord embed, truncating
// text that exceeds the embed limits.
func ToEmbed(doc presenter.Document) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: truncate(doc.Title, maxTitleLen),
		Color: doc.Color,
	}

	for i, s := range doc.Sections {
		if i == maxFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   truncate(s.Name, maxFieldNameLen),
			Value:  truncate(s.Value, maxFieldValueLen),
			Inline: false,
		})
	}

	if doc.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: truncate(doc.Footer, maxFooterLen)}
	}
	return embed
}

// truncate shortens s to at most limit runes, ending with an ellipsis when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
