package tui

// Command identifies one entry in the editor's command vocabulary. The
// same identifiers are used for key bindings and for externally injected
// command events, so both entry points share a single dispatch path.
type Command string

const (
	CmdBold           Command = "bold"
	CmdItalic         Command = "italic"
	CmdStrike         Command = "strike"
	CmdInlineCode     Command = "inline-code"
	CmdParagraph      Command = "paragraph"
	CmdHeading        Command = "heading"
	CmdBulletList     Command = "bullet-list"
	CmdOrderedList    Command = "ordered-list"
	CmdBlockquote     Command = "blockquote"
	CmdCodeBlock      Command = "code-block"
	CmdHorizontalRule Command = "horizontal-rule"

	CmdUndo  Command = "undo"
	CmdRedo  Command = "redo"
	CmdCopy  Command = "copy"
	CmdCut   Command = "cut"
	CmdPaste Command = "paste"

	CmdNewFile       Command = "new-file"
	CmdOpenFile      Command = "open-file"
	CmdSaveFile      Command = "save-file"
	CmdSaveAs        Command = "save-as"
	CmdCloseDocument Command = "close-document"

	CmdToggleSidebar Command = "toggle-sidebar"
	CmdToggleTheme   Command = "toggle-theme"
	CmdTogglePreview Command = "toggle-preview"
	CmdFindInFiles   Command = "find-in-files"
)

// CommandMsg carries a command into the update loop. Level is only
// meaningful for CmdHeading (1-6).
type CommandMsg struct {
	Command Command
	Level   int
}

// documentCommands are the commands that require an active document and
// no-op without one.
var documentCommands = map[Command]bool{
	CmdBold:           true,
	CmdItalic:         true,
	CmdStrike:         true,
	CmdInlineCode:     true,
	CmdParagraph:      true,
	CmdHeading:        true,
	CmdBulletList:     true,
	CmdOrderedList:    true,
	CmdBlockquote:     true,
	CmdCodeBlock:      true,
	CmdHorizontalRule: true,
	CmdUndo:           true,
	CmdRedo:           true,
	CmdCopy:           true,
	CmdCut:            true,
	CmdPaste:          true,
	CmdSaveFile:       true,
	CmdSaveAs:         true,
	CmdCloseDocument:  true,
}

// knownCommands is the closed vocabulary; anything else is dropped.
var knownCommands = map[Command]bool{
	CmdBold: true, CmdItalic: true, CmdStrike: true, CmdInlineCode: true,
	CmdParagraph: true, CmdHeading: true, CmdBulletList: true,
	CmdOrderedList: true, CmdBlockquote: true, CmdCodeBlock: true,
	CmdHorizontalRule: true, CmdUndo: true, CmdRedo: true, CmdCopy: true,
	CmdCut: true, CmdPaste: true, CmdNewFile: true, CmdOpenFile: true,
	CmdSaveFile: true, CmdSaveAs: true, CmdCloseDocument: true,
	CmdToggleSidebar: true, CmdToggleTheme: true, CmdTogglePreview: true,
	CmdFindInFiles: true,
}

// keyBindings maps terminal key sequences to commands. Heading levels use
// alt+1 through alt+6; alt+0 returns to paragraph.
var keyBindings = map[string]CommandMsg{
	"ctrl+b": {Command: CmdBold},
	"alt+i":  {Command: CmdItalic},
	"alt+x":  {Command: CmdStrike},
	"alt+c":  {Command: CmdInlineCode},
	"alt+0":  {Command: CmdParagraph},
	"alt+1":  {Command: CmdHeading, Level: 1},
	"alt+2":  {Command: CmdHeading, Level: 2},
	"alt+3":  {Command: CmdHeading, Level: 3},
	"alt+4":  {Command: CmdHeading, Level: 4},
	"alt+5":  {Command: CmdHeading, Level: 5},
	"alt+6":  {Command: CmdHeading, Level: 6},
	"alt+l":  {Command: CmdBulletList},
	"alt+o":  {Command: CmdOrderedList},
	"alt+q":  {Command: CmdBlockquote},
	"alt+f":  {Command: CmdCodeBlock},
	"alt+r":  {Command: CmdHorizontalRule},

	"ctrl+z": {Command: CmdUndo},
	"ctrl+y": {Command: CmdRedo},
	"alt+y":  {Command: CmdCopy},
	"alt+k":  {Command: CmdCut},
	"alt+p":  {Command: CmdPaste},

	"ctrl+n": {Command: CmdNewFile},
	"ctrl+o": {Command: CmdOpenFile},
	"ctrl+s": {Command: CmdSaveFile},
	"alt+s":  {Command: CmdSaveAs},
	"ctrl+w": {Command: CmdCloseDocument},

	"ctrl+e": {Command: CmdToggleSidebar},
	"ctrl+t": {Command: CmdToggleTheme},
	"ctrl+p": {Command: CmdTogglePreview},
	"ctrl+f": {Command: CmdFindInFiles},
}
