package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
 ____             ____        _                  
|  _ \  _____   _/ ___|  __ _| | __ _ _ __ _   _ 
| | | |/ _ \ \ / |___ \ / _' | |/ _' | '__| | | |
| |_| |  __/\ V / ___) | (_| | | (_| | |  | |_| |
|____/ \___| \_/ |____/ \__,_|_|\__,_|_|   \__, |
                                           |___/ 
`

// ColorizeText applies random colors to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")

	var coloredText strings.Builder
	for i, s := range strs {
		coloredText.WriteString(startColor.Fade(0, float32(len(strs)), float32(i%(len(strs)/2)), firstPoint).Sprint(s))
	}

	return coloredText.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}
