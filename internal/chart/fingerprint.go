package chart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// chartNamespace scopes chart IDs so they never collide with other v5 UUIDs
// derived from the same hash.
var chartNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:tuvi:chart"))

// Digest identifies a chart by its computed facts.
type Digest struct {
	// Hash is the hex SHA-256 of the canonical encoding.
	Hash string
	// ID is a name-based UUID derived from Hash.
	ID string
}

// Fingerprint hashes a canonical encoding of the chart. Two births that
// produce the same chart facts get the same digest; the display name does
// not take part.
func Fingerprint(c *Chart) Digest {
	sum := sha256.Sum256([]byte(Canonical(c)))
	hash := hex.EncodeToString(sum[:])
	return Digest{
		Hash: hash,
		ID:   uuid.NewSHA1(chartNamespace, []byte(hash)).String(),
	}
}

// Canonical renders the chart as sorted key=value lines.
func Canonical(c *Chart) string {
	kv := map[string]string{
		"birth.date":   c.Input.DateString(),
		"birth.time":   fmt.Sprintf("%02d:%02d", c.Input.Hour, c.Input.Minute),
		"birth.sex":    c.Input.Sex.Code(),
		"birth.lunar":  fmt.Sprint(c.Input.Lunar),
		"birth.leap":   fmt.Sprint(c.Input.Leap),
		"lunar.date":   c.Moment.Date.String(),
		"lunar.year":   c.Moment.YearPillar.String(),
		"lunar.month":  c.Moment.MonthPillar.String(),
		"lunar.day":    c.Moment.DayPillar.String(),
		"lunar.hour":   c.Moment.HourPillar.String(),
		"bureau":       fmt.Sprint(c.Bureau.Value()),
		"direction":    c.Direction.Code(),
		"self":         c.SelfBranch.Code(),
		"body":         c.BodyBranch.Code(),
		"marker.tuan":  c.Tuan.First.Code() + "," + c.Tuan.Second.Code(),
		"marker.triet": c.Triet.First.Code() + "," + c.Triet.Second.Code(),
		"napam":        c.YearNapAm.String(),
	}
	for _, p := range c.Palaces {
		codes := make([]string, len(p.Stars))
		for i, s := range p.Stars {
			codes[i] = s.Code()
		}
		prefix := "palace." + p.Role.Code()
		kv[prefix+".branch"] = p.Branch.Code()
		kv[prefix+".stars"] = strings.Join(codes, ",")
		kv[prefix+".decade"] = p.DecadeLabel
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(kv[k])
		b.WriteByte('\n')
	}
	return b.String()
}
