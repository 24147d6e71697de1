package match

import (
	"fmt"

	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

// Screen layout of the match view.
const (
	ScreenWidth  = 120
	ScreenHeight = 29
)

// Panels of the match view. The pitch bounds live inside LiveBox.
var (
	LiveBox     = core.NewRect(0, 0, 80, 14)
	SettingsBox = core.NewRect(80, 0, 40, 14)
	InfoBox     = core.NewRect(0, 14, 50, 6)
	BenchBox    = core.NewRect(0, 20, 50, 9)
	StartingBox = core.NewRect(50, 14, 70, 15)
)

// Glyphs used on the pitch.
const (
	GlyphGrass      = ' '
	GlyphMidline    = '┊'
	GlyphCentre     = '+'
	GlyphGoal       = '▒'
	GlyphPlayer     = '●'
	GlyphKeeper     = '◉'
	GlyphControlled = '◆'
	GlyphBall       = 'o'
	GlyphTrail      = '·'
)

// Render draws the full match view for a snapshot. It only reads its
// arguments, so it can be called with any settled or mid-animation state.
func Render(dst *core.Screen, snap Snapshot, hud HUD) {
	dst.Clear()

	liveTitle := "Live Match"
	settingsTitle := "Match Settings"
	if hud.Section == SectionLive {
		liveTitle = "[ Live Match ]"
	} else {
		settingsTitle = "[ Match Settings ]"
	}
	dst.DrawBox(LiveBox, liveTitle, core.ColorLine)
	dst.DrawBox(SettingsBox, settingsTitle, core.ColorLine)
	dst.DrawBox(InfoBox, "Match Information", core.ColorLine)
	dst.DrawBox(BenchBox, "Bench", core.ColorLine)
	dst.DrawBox(StartingBox, "Starting 11", core.ColorLine)

	RenderPitch(dst, snap, len(snap.Trail))
	if snap.Ended {
		dst.DrawTextCentered(LiveBox, finalBanner(snap), core.ColorHighlight)
	}
	renderInfo(dst, snap, hud)
	renderSettings(dst, snap, hud)
	renderSquad(dst, snap)
}

// RenderPitch draws the pitch, its markings, the first frames of the pass
// trail, the entities and the ball. Animations call it with a growing
// frame count; frames equal to len(snap.Trail) draws the settled state.
func RenderPitch(dst *core.Screen, snap Snapshot, frames int) {
	b := snap.Bounds
	ox, oy := LiveBox.X, LiveBox.Y
	at := func(p pitch.Point) (int, int) { return ox + p.X, oy + p.Y }

	dst.DrawRect(core.NewRect(ox+b.Left, oy+b.Top, b.Width(), b.Height()), GlyphGrass, core.ColorPitch)
	for y := b.Top; y <= b.Bottom; y++ {
		dst.SetColored(ox+b.MidX(), oy+y, GlyphMidline, core.ColorLine)
	}
	c := b.Center()
	dst.SetColored(ox+c.X, oy+c.Y, GlyphCentre, core.ColorLine)

	top, bottom := b.GoalRows()
	for y := top; y <= bottom; y++ {
		for _, x := range []int{b.Left, b.Left + 1, b.Right - 1, b.Right} {
			dst.SetColored(ox+x, oy+y, GlyphGoal, core.ColorGoal)
		}
	}

	frames = min(max(frames, 0), len(snap.Trail))
	for _, p := range snap.Trail[:frames] {
		x, y := at(p)
		dst.SetColored(x, y, GlyphTrail, core.ColorBall)
	}

	animating := frames < len(snap.Trail)
	if !animating && snap.Holder < 0 {
		x, y := at(snap.Ball)
		dst.SetColored(x, y, GlyphBall, core.ColorBall)
	}

	for _, e := range snap.Entities {
		x, y := at(e.Pos)
		dst.SetColored(x, y, entityGlyph(e), entityColor(e))
	}

	// The ball in flight is drawn over whoever it passes.
	if animating && frames > 0 {
		x, y := at(snap.Trail[frames-1])
		dst.SetColored(x, y, GlyphBall, core.ColorBall)
	}
}

// finalBanner is laid over the pitch once the match has ended.
func finalBanner(snap Snapshot) string {
	if snap.Reason == EndQuit {
		return fmt.Sprintf(" ENDED %d'  %s ", snap.Minute, snap.Score())
	}
	return fmt.Sprintf(" FULL TIME  %s ", snap.Score())
}

func entityGlyph(e EntityView) rune {
	switch {
	case e.Controlled:
		return GlyphControlled
	case e.Keeper:
		return GlyphKeeper
	default:
		return GlyphPlayer
	}
}

func entityColor(e EntityView) core.Color {
	switch {
	case e.HasBall:
		return core.ColorHolder
	case e.Keeper:
		return core.ColorKeeper
	case e.Side == Home:
		return core.ColorHome
	default:
		return core.ColorAway
	}
}

func renderInfo(dst *core.Screen, snap Snapshot, hud HUD) {
	in := InfoBox.Inner()
	x, y := in.X+1, in.Y
	dst.DrawText(x, y, fmt.Sprintf("Time: %d' (%s)", snap.Minute, snap.Phase))
	dst.DrawTextColored(x, y+1, snap.HomeClub, core.ColorHome)
	dst.DrawText(x+len([]rune(snap.HomeClub)), y+1, " vs ")
	dst.DrawTextColored(x+len([]rune(snap.HomeClub))+4, y+1, snap.AwayClub, core.ColorAway)
	dst.DrawTextColored(x, y+2, fmt.Sprintf("Score: %d - %d", snap.HomeScore, snap.AwayScore), core.ColorHighlight)
	dst.DrawText(x, y+3, fmt.Sprintf("Ball: %-9s Speed: %d", snap.BallState, hud.Speed))

	status, color := "", core.ColorDefault
	switch {
	case snap.Ended && snap.Reason == EndQuit:
		status, color = "ABANDONED "+snap.Score(), core.ColorAlert
	case snap.Ended:
		status, color = "FULL TIME "+snap.Score(), core.ColorAlert
	case snap.Paused:
		status, color = "PAUSED", core.ColorAlert
	case hud.SubMenu != SubMenuNone || hud.Section != SectionLive:
		status, color = "Clock stopped in settings", core.ColorMuted
	}
	if status != "" {
		dst.DrawTextColored(in.Right()-len([]rune(status))-1, y, status, color)
	}
}

func renderSettings(dst *core.Screen, snap Snapshot, hud HUD) {
	in := SettingsBox.Inner()
	x, y := in.X+1, in.Y
	for i, opt := range SettingsOptions {
		label := fmt.Sprintf("%d) %s", i+1, opt)
		color := core.ColorDefault
		if hud.Section == SectionSettings && i == hud.MenuIndex {
			label = "> " + label
			color = core.ColorHighlight
		} else {
			label = "  " + label
		}
		dst.DrawTextColored(x, y+i, label, color)
	}

	y += len(SettingsOptions) + 1
	switch hud.SubMenu {
	case SubMenuNone:
		dst.DrawTextColored(x, y, fmt.Sprintf("Formation: %s", hud.Formation), core.ColorMuted)
		dst.DrawTextColored(x, y+1, fmt.Sprintf("Tactic:    %s", hud.Tactic), core.ColorMuted)
	case SubMenuSpeed:
		dst.DrawText(x, y, fmt.Sprintf("Speed: %d", hud.Speed))
		dst.DrawTextColored(x, y+1, "up/down to adjust, esc to close", core.ColorMuted)
	case SubMenuFormation:
		names := make([]string, len(Formations))
		for i, f := range Formations {
			names[i] = f.Name
		}
		drawChoices(dst, x, y, names, hud.SubIndex, in.Bottom()-y)
	case SubMenuTactics:
		names := make([]string, len(Tactics))
		for i, t := range Tactics {
			names[i] = t.String()
		}
		drawChoices(dst, x, y, names, hud.SubIndex, in.Bottom()-y)
	case SubMenuRoles:
		var names []string
		for _, e := range userSide(snap) {
			names = append(names, e.Name)
		}
		drawChoices(dst, x, y, names, hud.SubIndex, in.Bottom()-y)
	}
}

// drawChoices draws a vertical list with the cursor row highlighted,
// scrolling so the cursor stays within rows.
func drawChoices(dst *core.Screen, x, y int, items []string, cursor, rows int) {
	if rows <= 0 {
		return
	}
	start := max(0, cursor-rows+1)
	for i := start; i < len(items) && i-start < rows; i++ {
		if i == cursor {
			dst.DrawTextColored(x, y+i-start, "> "+items[i], core.ColorHighlight)
		} else {
			dst.DrawText(x, y+i-start, "  "+items[i])
		}
	}
}

func userSide(snap Snapshot) []EntityView {
	var out []EntityView
	for _, e := range snap.Entities {
		if e.Side == snap.UserSide {
			out = append(out, e)
		}
	}
	return out
}

func renderSquad(dst *core.Screen, snap Snapshot) {
	in := StartingBox.Inner()
	for i, e := range userSide(snap) {
		if i >= in.H {
			break
		}
		color := core.ColorDefault
		if e.Controlled {
			color = core.ColorHighlight
		}
		line := fmt.Sprintf("%-4s %-20.20s %3.0f%%", e.Position, e.Name, e.Skill*100)
		dst.DrawTextColored(in.X+1, in.Y+i, line, color)
	}

	feedX := in.X + 34
	for i, ev := range snap.Feed {
		if i >= in.H {
			break
		}
		color := core.ColorMuted
		switch ev.Kind {
		case EventGoal:
			color = core.ColorHighlight
		case EventHalfTime, EventFullTime, EventQuit:
			color = core.ColorAlert
		}
		dst.DrawTextColored(feedX, in.Y+i, ev.String(), color)
	}

	bin := BenchBox.Inner()
	bench := snap.Bench[snap.UserSide]
	if len(bench) == 0 {
		dst.DrawTextColored(bin.X+1, bin.Y, "No substitutes", core.ColorMuted)
		return
	}
	for i, label := range bench {
		if i >= bin.H {
			break
		}
		dst.DrawText(bin.X+1, bin.Y+i, label)
	}
}
