package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// maxPPMLineLength is the longest line WritePPM emits
const maxPPMLineLength = 70

// maxPPMPixels bounds the canvas ReadPPM will allocate for a header
const maxPPMPixels = 1 << 24

// ErrInvalidPPM is returned when ReadPPM cannot parse its input
var ErrInvalidPPM = errors.New("invalid PPM data")

// WritePPM writes the canvas as plain-text P3 with channels in 0..255.
// Every row starts on a new line and is wrapped so no line exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			for _, channel := range [3]float64{p.R, p.G, p.B} {
				token := strconv.Itoa(scaleChannel(channel, 255))
				if lineLen > 0 && lineLen+1+len(token) > maxPPMLineLength {
					bw.WriteByte('\n')
					lineLen = 0
				}
				if lineLen > 0 {
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(token)
				lineLen += len(token)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ReadPPM parses a plain-text P3 image. Comments starting with # are skipped
// and channel values are scaled by the declared maximum.
func ReadPPM(r io.Reader) (*Canvas, error) {
	tokens := newTokenReader(r)

	magic, err := tokens.next()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrInvalidPPM, err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidPPM, magic)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "max value"} {
		v, err := tokens.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidPPM, name, err)
		}
		header[i] = v
	}
	width, height, maxValue := header[0], header[1], header[2]
	if width < 0 || height < 0 || maxValue <= 0 {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d max %d", ErrInvalidPPM, width, height, maxValue)
	}
	if height > 0 && width > maxPPMPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidPPM, width, height, maxPPMPixels)
	}

	c := New(width, height)
	scale := float64(maxValue)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var rgb [3]float64
			for i := range rgb {
				v, err := tokens.nextInt()
				if err != nil {
					return nil, fmt.Errorf("%w: pixel (%d,%d): %v", ErrInvalidPPM, x, y, err)
				}
				rgb[i] = float64(v) / scale
			}
			c.WritePixel(x, y, core.NewColor(rgb[0], rgb[1], rgb[2]))
		}
	}

	return c, nil
}

// tokenReader splits PPM input into whitespace-separated tokens
type tokenReader struct {
	scanner *bufio.Scanner
	pending []string
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{scanner: bufio.NewScanner(r)}
}

func (t *tokenReader) next() (string, error) {
	for len(t.pending) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		line := t.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		t.pending = strings.Fields(line)
	}

	token := t.pending[0]
	t.pending = t.pending[1:]
	return token, nil
}

func (t *tokenReader) nextInt() (int, error) {
	token, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(token)
}
