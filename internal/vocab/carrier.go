package vocab

// Fixed-position decodings of the 007 physical description field for
// sound recordings and related carriers.

// carrierForms decodes 007/01, the specific material designation.
var carrierForms = map[byte]string{
	'd': "Sound disc",
	'e': "Cylinder",
	'g': "Sound cartridge",
	'i': "Sound-track film",
	'q': "Roll",
	's': "Sound cassette",
	't': "Sound-tape reel",
	'u': "Unspecified",
	'w': "Wire recording",
	'z': "Other",
	'|': "No attempt to code",
}

// playingSpeeds decodes 007/03.
var playingSpeeds = map[byte]string{
	'a': "16 rpm (discs)",
	'b': "33 1/3 rpm (discs)",
	'c': "45 rpm (discs)",
	'd': "78 rpm (discs)",
	'e': "8 rpm (discs)",
	'f': "1.4 m. per second (discs)",
	'h': "120 rpm (cylinders)",
	'i': "160 rpm (cylinders)",
	'k': "15/16 ips (tapes)",
	'l': "1 7/8 ips (tapes)",
	'm': "3 3/4 ips (tapes)",
	'o': "7 1/2 ips (tapes)",
	'p': "15 ips (tapes)",
	'r': "30 ips (tapes)",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// soundKinds decodes 007/04, the configuration of playback channels.
var soundKinds = map[byte]string{
	'm': "Monaural",
	'q': "Quadraphonic, multichannel, or surround",
	's': "Stereophonic",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// carrierDimensions decodes 007/06.
var carrierDimensions = map[byte]string{
	'a': "3 in. diameter",
	'b': "5 in. diameter",
	'c': "7 in. diameter",
	'd': "10 in. diameter",
	'e': "12 in. diameter",
	'f': "16 in. diameter",
	'g': "4 3/4 in. or 12 cm. diameter",
	'j': "3 7/8 x 2 1/2 in.",
	'o': "5 1/4 x 3 7/8 in.",
	's': "2 3/4 x 4 in.",
	'n': "Not applicable",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// tapeConfigurations decodes 007/08.
var tapeConfigurations = map[byte]string{
	'a': "Full (1) track",
	'b': "Half (2) track",
	'c': "Quarter (4) track",
	'd': "Eight track",
	'e': "Twelve track",
	'f': "Sixteen track",
	'n': "Not applicable",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// physicalMediums decodes 007/10, the kind of material.
var physicalMediums = map[byte]string{
	'a': "Lacquer coating",
	'b': "Cellulose nitrate",
	'c': "Acetate tape with ferrous oxide",
	'g': "Glass with lacquer",
	'i': "Aluminum with lacquer",
	'l': "Metal",
	'm': "Plastic with metal",
	'p': "Plastic",
	'r': "Paper with lacquer or ferrous oxide",
	's': "Shellac",
	'w': "Wax",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// reproductionCharacteristics decodes 007/12, special playback
// characteristics.
var reproductionCharacteristics = map[byte]string{
	'a': "NAB standard",
	'b': "CCIR standard",
	'c': "Dolby-B encoded",
	'd': "dbx encoded",
	'e': "Digital recording",
	'f': "Dolby-A encoded",
	'g': "Dolby-C encoded",
	'h': "CX encoded",
	'n': "Not applicable",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// captureModes decodes 007/13, capture and storage technique.
var captureModes = map[byte]string{
	'a': "Acoustical capture, direct storage",
	'b': "Direct storage, not acoustical",
	'd': "Digital storage",
	'e': "Analog electrical storage",
	'u': "Unknown",
	'z': "Other",
	'|': "No attempt to code",
}

// CarrierForm returns the label for an 007/01 code.
func CarrierForm(code byte) string { return carrierForms[code] }

// PlayingSpeed returns the label for an 007/03 code.
func PlayingSpeed(code byte) string { return playingSpeeds[code] }

// SoundKind returns the label for an 007/04 code.
func SoundKind(code byte) string { return soundKinds[code] }

// CarrierDimension returns the label for an 007/06 code.
func CarrierDimension(code byte) string { return carrierDimensions[code] }

// TapeConfiguration returns the label for an 007/08 code.
func TapeConfiguration(code byte) string { return tapeConfigurations[code] }

// PhysicalMedium returns the label for an 007/10 code.
func PhysicalMedium(code byte) string { return physicalMediums[code] }

// ReproductionCharacteristic returns the label for an 007/12 code.
func ReproductionCharacteristic(code byte) string { return reproductionCharacteristics[code] }

// CaptureMode returns the label for an 007/13 code.
func CaptureMode(code byte) string { return captureModes[code] }
