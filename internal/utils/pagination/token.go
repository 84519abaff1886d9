package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeCursor creates a base64 encoded token from the timestamp and ingestion ID of
// the last row of a history page, plus the window start when there is one.
func EncodeCursor(cursor domain.SeriesCursor) string {
	tokenStr := fmt.Sprintf("%s|%d", cursor.Timestamp.UTC().Format(timeFormat), cursor.ID)
	if cursor.From != nil {
		tokenStr += "|" + cursor.From.UTC().Format(timeFormat)
	}
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (domain.SeriesCursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return domain.SeriesCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) < 2 {
		return domain.SeriesCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	ts, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.SeriesCursor{}, fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return domain.SeriesCursor{}, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	cursor := domain.SeriesCursor{Timestamp: ts, ID: id}
	if len(parts) == 3 {
		from, err := time.Parse(timeFormat, parts[2])
		if err != nil {
			return domain.SeriesCursor{}, fmt.Errorf("invalid pagination token format (window parse): %w", err)
		}
		cursor.From = &from
	}
	return cursor, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	return strings.Split(string(decodedBytes), "|"), nil
}
