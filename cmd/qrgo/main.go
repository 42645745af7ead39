// Command qrgo renders a QR Code symbol for a line of text to the
// terminal, or optionally an SVG file.
package main

func main() {
	Execute()
}
