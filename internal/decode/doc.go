// Package decode turns audio files into planar float64 channel data.
//
// Formats are chosen by file extension: WAV, AIFF, MP3 and Ogg Vorbis are
// supported through the go-audio, go-mp3 and oggvorbis codecs. Every
// failure is reported as an [*Error] carrying the file path.
package decode
