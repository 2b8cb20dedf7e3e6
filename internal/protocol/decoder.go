package protocol

import (
	"fmt"
)

// RotationEvent is a single face rotation reported by the cube.
type RotationEvent struct {
	FaceCode          byte // 0x00-0x0B
	CenterOrientation byte
	Clockwise         bool
	Color             string
}

var colorNames = map[byte]string{
	0: "blue",
	1: "green",
	2: "white",
	3: "yellow",
	4: "red",
	5: "orange",
}

// colorFaces matches the on-screen cube: white up, blue front, red right.
var colorFaces = map[string]string{
	"white":  "U",
	"yellow": "D",
	"blue":   "F",
	"green":  "B",
	"red":    "R",
	"orange": "L",
}

// DecodeRotation decodes a rotation payload of [face_dir, center_orientation] pairs.
// Even face codes are clockwise turns.
func DecodeRotation(payload []byte) ([]RotationEvent, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	events := make([]RotationEvent, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]
		colorName, ok := colorNames[faceCode/2]
		if !ok {
			return nil, fmt.Errorf("unknown color index %d from face code 0x%02X", faceCode/2, faceCode)
		}

		events = append(events, RotationEvent{
			FaceCode:          faceCode,
			CenterOrientation: payload[i+1],
			Clockwise:         faceCode%2 == 0,
			Color:             colorName,
		})
	}

	return events, nil
}

// MoveName returns the move table name for the rotation, e.g. "R" or "F'".
func (e RotationEvent) MoveName() string {
	name := colorFaces[e.Color]
	if !e.Clockwise {
		name += "'"
	}
	return name
}

// DecodeMoves decodes a rotation payload straight into move names.
func DecodeMoves(payload []byte) ([]string, error) {
	events, err := DecodeRotation(payload)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.MoveName()
	}
	return names, nil
}

// DecodeBattery decodes a battery payload into a 0-100 level.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("battery payload too short")
	}
	return int(payload[0]), nil
}
