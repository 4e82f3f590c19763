package utils

import (
	"regexp"

	"github.com/pkg/errors"
)

var ErrInvalidVideoURL = errors.New("invalid video URL")

var youtubeIDPattern = regexp.MustCompile(`(?i)(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ExtractVideoID returns the 11 character YouTube id embedded in a lecture URL
func ExtractVideoID(url string) (string, error) {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if len(m) < 2 {
		return "", errors.Wrapf(ErrInvalidVideoURL, "%q", url)
	}
	return m[1], nil
}
