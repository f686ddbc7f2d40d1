package seo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	dbmodels "pv-leads-backend/models/db"
)

const (
	titleMaxLength       = 60
	descriptionMaxLength = 160
)

var (
	nonAlnum       = regexp.MustCompile(`[^a-z0-9]+`)
	ligatures      = strings.NewReplacer("œ", "oe", "æ", "ae", "'", "-", "’", "-")
	nonDigitOrPlus = regexp.MustCompile(`[^\d+]`)
	phoneLocal     = regexp.MustCompile(`^0[1-9]\d{8}$`)
	phonePlus33    = regexp.MustCompile(`^\+33[1-9]\d{8}$`)
	phone0033      = regexp.MustCompile(`^0033[1-9]\d{8}$`)
)

// FoldAccents lowercases and strips diacritics.
func FoldAccents(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.ToLower(s),
	)
	return s
}

func Slugify(text string) string {
	slug := ligatures.Replace(strings.ToLower(text))
	slug = FoldAccents(slug)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Truncate cuts text to maxLength runes on a word boundary and appends "...".
func Truncate(text string, maxLength int) string {
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	truncated := string(r[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}

func SEOTitle(parts []string, separator string) string {
	if separator == "" {
		separator = " | "
	}
	return Truncate(strings.Join(parts, separator), titleMaxLength)
}

func MetaDescription(text string) string {
	return Truncate(text, descriptionMaxLength)
}

// CleanPhoneNumber normalises french numbers to 0XXXXXXXXX, other input is returned untouched.
func CleanPhoneNumber(phone string) string {
	cleaned := nonDigitOrPlus.ReplaceAllString(phone, "")
	switch {
	case phoneLocal.MatchString(cleaned):
		return cleaned
	case phonePlus33.MatchString(cleaned):
		return "0" + cleaned[3:]
	case phone0033.MatchString(cleaned):
		return "0" + cleaned[4:]
	}
	return phone
}

var businessIDCleaner = regexp.MustCompile(`[^a-z0-9]`)

func BusinessID(name, address string) string {
	cleanName := businessIDCleaner.ReplaceAllString(strings.ToLower(name), "")
	cleanAddress := businessIDCleaner.ReplaceAllString(strings.ToLower(address), "")
	if len(cleanAddress) > 20 {
		cleanAddress = cleanAddress[:20]
	}
	return fmt.Sprintf("%s-%s", cleanName, cleanAddress)
}

func BusinessQualityScore(rec dbmodels.Business) int {
	score := 0
	if utf8.RuneCountInString(rec.Name) > 3 {
		score += 20
	}
	if utf8.RuneCountInString(rec.Address) > 10 {
		score += 20
	}
	if rec.Phone != "" {
		score += 15
	}
	if rec.Website != "" {
		score += 15
	}
	if rec.Rating != nil && *rec.Rating >= 4 {
		score += 20
	}
	if rec.ReviewCount != nil && *rec.ReviewCount >= 5 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func CityKeywords(city dbmodels.City) []string {
	return []string{
		"panneaux solaires " + city.Name,
		"photovoltaïque " + city.Name,
		"installateur RGE " + city.Name,
		city.PostalCode,
		"installation solaire " + city.Department,
		"devis panneaux solaires " + city.Name,
		"prix panneaux solaires " + city.Name,
		"énergie solaire " + city.Region,
	}
}
