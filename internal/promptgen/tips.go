package promptgen

// Tips are the prompt-writing guidelines shown by `imageprompt tips`.
var Tips = []string{
	"Subject: say exactly what to draw, not a vague theme.",
	"Details: clothing, expression, pose, and surroundings all help.",
	"Style: name an art style or a medium (photo, oil painting, anime).",
	"Lighting: time of day and light quality change the whole image.",
	"Composition: close-up, wide shot, rule of thirds, symmetry.",
	"Mood: one or two atmosphere words keep the image coherent.",
	"Negative prompt: list what you do not want to see.",
}
