package audio

import "math"

// Cue identifies a race sound effect
type Cue int

const (
	CueCountdown Cue = iota
	CueGo
	CueCheckpoint
	CueLap
	CueWin
	CueLose
)

var cueNames = map[Cue]string{
	CueCountdown:  "countdown",
	CueGo:         "go",
	CueCheckpoint: "checkpoint",
	CueLap:        "lap",
	CueWin:        "win",
	CueLose:       "lose",
}

func (c Cue) String() string {
	if n, ok := cueNames[c]; ok {
		return n
	}
	return "unknown"
}

// Cues lists every cue in playback-independent order
func Cues() []Cue {
	return []Cue{CueCountdown, CueGo, CueCheckpoint, CueLap, CueWin, CueLose}
}

// Render synthesizes a cue as stereo float32 LE frames
func Render(c Cue) []byte {
	switch c {
	case CueCountdown:
		return genBeep(440, 0.18)
	case CueGo:
		return genBeep(880, 0.45)
	case CueCheckpoint:
		return genBlip()
	case CueLap:
		return genArpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.075, 0.18)
	case CueWin:
		return genArpeggio([]float64{440, 554.37, 659.25, 880, 1108.73}, 0.09, 0.25)
	case CueLose:
		return genLose()
	}
	return nil
}

// genBeep: start-light tone with a bell attack
func genBeep(freq, dur float64) []byte {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.2, 0.6, 0.3)
		mix[i] = fm(t, freq, 1.0, 0.8*env)*env*0.45 + math.Sin(2*math.Pi*freq*2*t)*env*0.05
	}
	return bake(mix)
}

// genBlip: short rising chirp
func genBlip() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		mix[i] = fm(t, 700+700*p, 1.0, 0.6) * env * 0.38
	}
	return bake(mix)
}

// genArpeggio: each note rings over the next
func genArpeggio(notes []float64, step, tail float64) []byte {
	noteLen := int(step * SampleRate)
	total := len(notes)*noteLen + int(tail*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return bake(mix)
}

// genLose: slow descending minor chord, staggered
func genLose() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	return bake(mix)
}
