package extract

import "fmt"

// General MIDI program names, index = program number.
// https://en.wikipedia.org/wiki/General_MIDI#Program_change_events
var gmInstruments = [128]string{
	"Acoustic Piano", "Bright Piano", "Electric Piano 1", "Electric Piano 2",
	"Honky Tonk Piano", "Electric Piano", "Harpsichord", "Clavier",
	"Celesta", "Glockenspiel", "Music Box", "Vibraphone",
	"Marimba", "Xylophone", "Tubular Bells", "Dulcimer",
	"Drawbar Organ", "Percussive Organ", "Rock Organ", "Church Organ",
	"Reed Organ", "Accordion", "Harmonica", "Tango Accordion",
	"Acoustic Nylon Guitar", "Acoustic Steel Guitar", "Electric Jazz Guitar", "Electric Clean Guitar",
	"Electric Muted Guitar", "Overdriven Guitar", "Distortion Guitar", "Guitar Harmonics",
	"Acoustic Bass", "Electric Finger Bass", "Electric Pick Bass", "Fretless Bass",
	"Slap Bass 1", "Slap Bass 2", "Synth Bass 1", "Synth Bass 2",
	"Violin", "Viola", "Cello", "Contrabass",
	"Tremolo Strings", "Pizzicato Strings", "Orchestral Harp", "Timpani",
	"String Ensemble 1", "String Ensemble 2", "Synth Strings 1", "Synth Strings 2",
	"Choir Aahs", "Choir Oohs", "Synth Voice", "Orchestra Hit",
	"Trumpet", "Trombone", "Tuba", "Muted Trumpet",
	"French Horn", "Brass Section", "Synth Brass 1", "Synth Brass 2",
	"Soprano Sax", "Alto Sax", "Tenor Sax", "Baritone Sax",
	"Oboe", "English Horn", "Bassoon", "Clarinet",
	"Piccolo", "Flute", "Recorder", "Pan Flute",
	"Bottle Blow", "Shakuhachi", "Whistle", "Ocarina",
	"Lead Synth Square", "Lead Synth Sawtooth", "Lead Synth Calliope", "Lead Synth Chiff",
	"Lead Synth Charang", "Lead Synth Voice", "Lead Synth Fifths", "Lead Synth Bass + Lead",
	"Pad Synth New Age", "Pad Synth Warm", "Pad Synth Polysynth", "Pad Synth Choir",
	"Pad Synth Bowed", "Pad Synth Metallic", "Pad Synth Halo", "Pad Synth Sweep",
	"Fx Synth Rain", "Fx Synth Soundtrack", "Fx Synth Crystal", "Fx Synth Atmosphere",
	"Fx Synth Brightness", "Fx Synth Goblins", "Fx Synth Echoes", "Fx Synth Sci Fi",
	"Sitar", "Banjo", "Shamisen", "Koto",
	"Kalimba", "Bagpipe", "Fiddle", "Shanai",
	"Tinkle Bell", "Agogo", "Steel Drums", "Woodblock",
	"Taiko Drum", "Melodic Tom", "Synth Drum", "Reverse Cymbal",
	"Guitar Fret Noise", "Breath Noise", "Seashore", "Bird Tweet",
	"Telephone Ring", "Helicopter", "Applause", "Gunshot",
}

// InstrumentName maps a GM program number to its label. program < 0 means
// no program change was seen; channel-10 tracks then fall back to
// "Percussion", everything else to "Unknown".
func InstrumentName(program int, percussion bool) string {
	if program >= 0 {
		if program < len(gmInstruments) {
			return gmInstruments[program]
		}
		return fmt.Sprintf("Instrument %d", program)
	}
	if percussion {
		return "Percussion"
	}
	return "Unknown"
}
