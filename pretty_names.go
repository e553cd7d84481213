package amongdata

import "fmt"

// PrettyPayloadType returns a human-readable name for a payload type.
// Codes missing from the registry come back as "unknown (<code>)".
func PrettyPayloadType(p PayloadType) string {
	switch p.Canonical() {
	case CreateGame:
		return "create game"
	case JoinGame:
		return "join game"
	case StartGame:
		return "start game"
	case RemoveGame:
		return "remove game"
	case RemovePlayer:
		return "remove player"
	case GameData:
		return "game data"
	case GameDataTo:
		return "game data (to)"
	case JoinedGame:
		return "joined game"
	case EndGame:
		return "end game"
	case AlterGame:
		return "alter game"
	case KickPlayer:
		return "kick player"
	case WaitForHost:
		return "wait for host"
	case Redirect:
		return "redirect"
	case ReselectServer:
		return "reselect server"
	case GetGameList:
		return "get game list"
	default:
		return unknownLabel(uint64(p))
	}
}

// Shared by reasons that only ever show up in internal tooling.
const forcedDisconnectText = "Forcibly disconnected from the server:\nThe remote sent a disconnect request."

// PrettyDisconnectReason returns the disconnect explanation as the game shows
// it to the player. Lines are separated by '\n'. Codes missing from the
// registry come back as "unknown (<code>)".
func PrettyDisconnectReason(r DisconnectReason) string {
	switch r.Canonical() {
	case GameFull:
		return "The game you tried to join is full.\nCheck with the host to see if you can join next round."
	case GameStarted:
		return "The game you tried to join already started.\nCheck with the host to see if you can join next round."
	case OutdatedClient:
		return "You are running an older version of the game.\nPlease update to play with others."

	case Banned:
		return "You were banned from the room.\nYou cannot rejoin that room."
	case Kicked:
		return "You were kicked from the room.\nYou cannot rejoin that room."

	case InvalidUsername:
		return "Server refused username."
	case Hacking:
		return "You were banned for hacking.\nPlease stop."
	case BadConnection:
		return "You disconnected from the host.\nIf this happens often, check your WiFi strength."

	case ServerClosed:
		return "The server stopped this game. Possibly due to inactivity."
	case ServerOverloaded:
		return "The Among Us servers are overloaded.\nSorry! Please try again later!"

	case GameNotFound:
		return "Could not find the game you're looking for."
	case Custom:
		return "Custom"
	case None:
		return forcedDisconnectText
	default:
		return unknownLabel(uint64(r))
	}
}

var rpcFlagLabels = [rpcFlagCount]string{
	PlayAnimation:    "PlayAnimation",
	CompleteTask:     "CompleteTask",
	SyncSettings:     "SyncSettings",
	SetInfected:      "SetInfected",
	Exiled:           "Exiled",
	CheckName:        "CheckName",
	SetName:          "SetName",
	CheckColor:       "CheckColor",
	SetColor:         "SetColor",
	SetHat:           "SetHat",
	SetSkin:          "SetSkin",
	ReportDeadBody:   "ReportDeadBody",
	MurderPlayer:     "MurderPlayer",
	SendChat:         "SendChat",
	StartMeeting:     "StartMeeting",
	SetScanner:       "SetScanner",
	SendChatNote:     "SendChatNote",
	SetPet:           "SetPet",
	SetStartCounter:  "SetStartCounter",
	EnterVent:        "EnterVent",
	ExitVent:         "ExitVent",
	SnapTo:           "SnapTo",
	Close:            "Close",
	VotingComplete:   "VotingComplete",
	CastVote:         "CastVote",
	ClearVote:        "ClearVote",
	AddVote:          "AddVote",
	CloseDoorsOfType: "CloseDoorsOfType",
	RepairSystem:     "RepairSystem",
	SetTasks:         "SetTasks",
	UpdateGameData:   "UpdateGameData",
}

// Indexed by code; code 3 has no variant and stays empty.
var gameDataTypeLabels = [ChangeSettings + 1]string{
	Data:           "generic data",
	RPC:            "rpc",
	Spawn:          "spawn",
	Despawn:        "despawn",
	SceneChange:    "scene change",
	Ready:          "ready",
	ChangeSettings: "change settings",
}

var playerColorLabels = [playerColorCount]string{
	Red:       "red",
	Blue:      "blue",
	DarkGreen: "dark green",
	Pink:      "pink",
	Orange:    "orange",
	Yellow:    "yellow",
	Black:     "black",
	White:     "white",
	Purple:    "purple",
	Brown:     "brown",
	Cyan:      "cyan",
	Lime:      "lime",
}

// Labels as they appear in the in-game task list.
var taskTypeLabels = [taskTypeCount]string{
	SubmitScan:           "Submit Scan",
	PrimeShields:         "Prime Shields",
	FuelEngines:          "Fuel Engines",
	ChartCourse:          "Chart Course",
	StartReactor:         "Start Reactor",
	SwipeCard:            "Swipe Card",
	ClearAsteroids:       "Clear Asteroids",
	UploadData:           "Upload Data",
	InspectSample:        "Inspect Sample",
	EmptyChute:           "Empty Chute",
	EmptyGarbage:         "Empty Garbage",
	AlignEngineOutput:    "Align Engine Output",
	FixWiring:            "Fix Wiring",
	CalibrateDistributor: "Calibrate Distributor",
	DivertPower:          "Divert Power",
	UnlockManifolds:      "Unlock Manifolds",
	ResetReactor:         "Reset Reactor",
	FixLights:            "Fix Lights",
	CleanO2Filter:        "Clean O2 Filter",
	FixComms:             "Fix Comms",
	RestoreOxygen:        "Restore Oxygen",
	StabilizeSteering:    "Stabilize Steering",
	AssembleArtifact:     "Assemble Artifact",
	SortSamples:          "Sort Samples",
	MeasureWeather:       "Measure Weather",
	EnterIdCode:          "Enter Id Code",
}

// PrettyRPCFlag returns the name of an RPC flag.
// Flags outside the registry return an error wrapping ErrUnknownVariant.
func PrettyRPCFlag(f RPCFlag) (string, error) {
	return closedLabel(rpcFlagLabels[:], DomainRPCFlag, uint64(f))
}

// PrettyGameDataType returns a human-readable name for a game data type.
// Types outside the registry return an error wrapping ErrUnknownVariant.
func PrettyGameDataType(t GameDataType) (string, error) {
	return closedLabel(gameDataTypeLabels[:], DomainGameDataType, uint64(t))
}

// PrettyPlayerColor returns a human-readable name for a player color.
// Colors outside the registry return an error wrapping ErrUnknownVariant.
func PrettyPlayerColor(c PlayerColor) (string, error) {
	return closedLabel(playerColorLabels[:], DomainPlayerColor, uint64(c))
}

// PrettyTaskType returns the task name as seen in the in-game task list.
// Types outside the registry return an error wrapping ErrUnknownVariant.
func PrettyTaskType(t TaskType) (string, error) {
	return closedLabel(taskTypeLabels[:], DomainTaskType, uint64(t))
}

// closedLabel looks code up in a code-indexed table. Holes in the table and
// codes past its end are misses; the returned error is the only signal.
func closedLabel(table []string, domain string, code uint64) (string, error) {
	if label, ok := tableLabel(table, code); ok {
		return label, nil
	}
	return "", NewUnknownVariantError(domain, code)
}

func tableLabel(table []string, code uint64) (string, bool) {
	if code >= uint64(len(table)) || table[code] == "" {
		return "", false
	}
	return table[code], true
}

func unknownLabel(code uint64) string {
	return fmt.Sprintf("unknown (%d)", code)
}

func (p PayloadType) String() string { return PrettyPayloadType(p) }

func (r DisconnectReason) String() string { return PrettyDisconnectReason(r) }

// String returns the flag name, or "RPCFlag(<code>)" outside the registry.
func (f RPCFlag) String() string {
	if label, ok := tableLabel(rpcFlagLabels[:], uint64(f)); ok {
		return label
	}
	return fmt.Sprintf("RPCFlag(%d)", uint8(f))
}

// String returns the type name, or "GameDataType(<code>)" outside the registry.
func (t GameDataType) String() string {
	if label, ok := tableLabel(gameDataTypeLabels[:], uint64(t)); ok {
		return label
	}
	return fmt.Sprintf("GameDataType(%d)", uint8(t))
}

// String returns the color name, or "PlayerColor(<code>)" outside the registry.
func (c PlayerColor) String() string {
	if label, ok := tableLabel(playerColorLabels[:], uint64(c)); ok {
		return label
	}
	return fmt.Sprintf("PlayerColor(%d)", uint8(c))
}

// String returns the task name, or "TaskType(<code>)" outside the registry.
func (t TaskType) String() string {
	if label, ok := tableLabel(taskTypeLabels[:], uint64(t)); ok {
		return label
	}
	return fmt.Sprintf("TaskType(%d)", uint8(t))
}
