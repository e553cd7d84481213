package amongdata

// Among Us Protocol Code Registry
//
// This file is the registry of every protocol code the label resolvers know
// about. Codes are decoded upstream (Hazel message framing); this package only
// names them. When the game adds a code, it is added here first and the
// coverage tests then fail until a label exists for it.
//
// Each domain keeps its variants in an array checked against a named count
// constant, so a variant list that disagrees with its count does not
// compile.

// PayloadType is the tag of a top-level Hazel root message.
// The tag is a byte on the wire today; the type is wider so that inspectors can
// carry codes from newer or foreign framings without truncating them.
type PayloadType uint16

// Payload Type Constants
const (
	CreateGame     PayloadType = 0
	JoinGame       PayloadType = 1
	StartGame      PayloadType = 2
	RemoveGame     PayloadType = 3
	RemovePlayer   PayloadType = 4
	GameData       PayloadType = 5
	GameDataTo     PayloadType = 6
	JoinedGame     PayloadType = 7
	EndGame        PayloadType = 8
	GetGameList    PayloadType = 9 // legacy list request
	AlterGame      PayloadType = 10
	KickPlayer     PayloadType = 11
	WaitForHost    PayloadType = 12
	Redirect       PayloadType = 13
	ReselectServer PayloadType = 14
	GetGameListV2  PayloadType = 16 // same meaning as GetGameList
)

// DisconnectReason is the reason byte sent with a Hazel disconnect.
type DisconnectReason uint8

// Disconnect Reason Constants
const (
	None             DisconnectReason = 0
	GameFull         DisconnectReason = 1
	GameStarted      DisconnectReason = 2
	GameNotFound     DisconnectReason = 3
	CustomLegacy     DisconnectReason = 4 // older servers; same meaning as Custom
	OutdatedClient   DisconnectReason = 5
	Banned           DisconnectReason = 6
	Kicked           DisconnectReason = 7
	Custom           DisconnectReason = 8
	InvalidUsername  DisconnectReason = 9
	Hacking          DisconnectReason = 10
	Force            DisconnectReason = 16
	BadConnection    DisconnectReason = 17
	GameNotFound2    DisconnectReason = 18 // same meaning as GameNotFound
	ServerClosed     DisconnectReason = 19
	ServerOverloaded DisconnectReason = 20
)

// RPCFlag identifies the remote procedure carried by an RPC game data frame.
type RPCFlag uint8

// RPC Flag Constants
const (
	PlayAnimation RPCFlag = iota
	CompleteTask
	SyncSettings
	SetInfected
	Exiled
	CheckName
	SetName
	CheckColor
	SetColor
	SetHat
	SetSkin
	ReportDeadBody
	MurderPlayer
	SendChat
	StartMeeting
	SetScanner
	SendChatNote
	SetPet
	SetStartCounter
	EnterVent
	ExitVent
	SnapTo
	Close
	VotingComplete
	CastVote
	ClearVote
	AddVote
	CloseDoorsOfType
	RepairSystem
	SetTasks
	UpdateGameData
)

// GameDataType is the kind of a frame inside a GameData or GameDataTo payload.
// Code 3 is unused by the game.
type GameDataType uint8

// Game Data Type Constants
const (
	Data           GameDataType = 1
	RPC            GameDataType = 2
	Spawn          GameDataType = 4
	Despawn        GameDataType = 5
	SceneChange    GameDataType = 6
	Ready          GameDataType = 7
	ChangeSettings GameDataType = 8
)

// PlayerColor is the cosmetic color index of a player.
type PlayerColor uint8

// Player Color Constants
const (
	Red PlayerColor = iota
	Blue
	DarkGreen
	Pink
	Orange
	Yellow
	Black
	White
	Purple
	Brown
	Cyan
	Lime
)

// TaskType identifies a task in the crewmate task list.
type TaskType uint8

// Task Type Constants
const (
	SubmitScan TaskType = iota
	PrimeShields
	FuelEngines
	ChartCourse
	StartReactor
	SwipeCard
	ClearAsteroids
	UploadData
	InspectSample
	EmptyChute
	EmptyGarbage
	AlignEngineOutput
	FixWiring
	CalibrateDistributor
	DivertPower
	UnlockManifolds
	ResetReactor
	FixLights
	CleanO2Filter
	FixComms
	RestoreOxygen
	StabilizeSteering
	AssembleArtifact
	SortSamples
	MeasureWeather
	EnterIdCode
)

// Variant counts per domain. Bump together with the variant arrays below.
const (
	payloadTypeCount      = 16
	disconnectReasonCount = 16
	rpcFlagCount          = 31
	gameDataTypeCount     = 7
	playerColorCount      = 12
	taskTypeCount         = 26
)

var payloadTypeVariants = [...]PayloadType{
	CreateGame, JoinGame, StartGame, RemoveGame, RemovePlayer, GameData,
	GameDataTo, JoinedGame, EndGame, GetGameList, AlterGame, KickPlayer,
	WaitForHost, Redirect, ReselectServer, GetGameListV2,
}

var disconnectReasonVariants = [...]DisconnectReason{
	None, GameFull, GameStarted, GameNotFound, CustomLegacy, OutdatedClient,
	Banned, Kicked, Custom, InvalidUsername, Hacking, Force, BadConnection,
	GameNotFound2, ServerClosed, ServerOverloaded,
}

var rpcFlagVariants = [...]RPCFlag{
	PlayAnimation, CompleteTask, SyncSettings, SetInfected, Exiled, CheckName,
	SetName, CheckColor, SetColor, SetHat, SetSkin, ReportDeadBody,
	MurderPlayer, SendChat, StartMeeting, SetScanner, SendChatNote, SetPet,
	SetStartCounter, EnterVent, ExitVent, SnapTo, Close, VotingComplete,
	CastVote, ClearVote, AddVote, CloseDoorsOfType, RepairSystem, SetTasks,
	UpdateGameData,
}

var gameDataTypeVariants = [...]GameDataType{
	Data, RPC, Spawn, Despawn, SceneChange, Ready, ChangeSettings,
}

var playerColorVariants = [...]PlayerColor{
	Red, Blue, DarkGreen, Pink, Orange, Yellow, Black, White, Purple, Brown,
	Cyan, Lime,
}

var taskTypeVariants = [...]TaskType{
	SubmitScan, PrimeShields, FuelEngines, ChartCourse, StartReactor,
	SwipeCard, ClearAsteroids, UploadData, InspectSample, EmptyChute,
	EmptyGarbage, AlignEngineOutput, FixWiring, CalibrateDistributor,
	DivertPower, UnlockManifolds, ResetReactor, FixLights, CleanO2Filter,
	FixComms, RestoreOxygen, StabilizeSteering, AssembleArtifact, SortSamples,
	MeasureWeather, EnterIdCode,
}

// A variant list whose length disagrees with its count fails to compile here.
var (
	_ [payloadTypeCount]PayloadType           = payloadTypeVariants
	_ [disconnectReasonCount]DisconnectReason = disconnectReasonVariants
	_ [rpcFlagCount]RPCFlag                   = rpcFlagVariants
	_ [gameDataTypeCount]GameDataType         = gameDataTypeVariants
	_ [playerColorCount]PlayerColor           = playerColorVariants
	_ [taskTypeCount]TaskType                 = taskTypeVariants
)

// PayloadTypes returns every known payload type in wire order.
func PayloadTypes() []PayloadType { return append([]PayloadType(nil), payloadTypeVariants[:]...) }

// DisconnectReasons returns every known disconnect reason in wire order.
func DisconnectReasons() []DisconnectReason {
	return append([]DisconnectReason(nil), disconnectReasonVariants[:]...)
}

// RPCFlags returns every known RPC flag in wire order.
func RPCFlags() []RPCFlag { return append([]RPCFlag(nil), rpcFlagVariants[:]...) }

// GameDataTypes returns every known game data type in wire order.
func GameDataTypes() []GameDataType { return append([]GameDataType(nil), gameDataTypeVariants[:]...) }

// PlayerColors returns every known player color in wire order.
func PlayerColors() []PlayerColor { return append([]PlayerColor(nil), playerColorVariants[:]...) }

// TaskTypes returns every known task type in wire order.
func TaskTypes() []TaskType { return append([]TaskType(nil), taskTypeVariants[:]...) }

// Canonical collapses alias codes onto the variant they share a meaning with.
// GetGameListV2 becomes GetGameList; every other code is returned unchanged.
func (p PayloadType) Canonical() PayloadType {
	if p == GetGameListV2 {
		return GetGameList
	}
	return p
}

// Canonical collapses alias codes onto the variant they share a meaning with:
// GameNotFound2 becomes GameNotFound, CustomLegacy becomes Custom and Force
// becomes None.
func (r DisconnectReason) Canonical() DisconnectReason {
	switch r {
	case GameNotFound2:
		return GameNotFound
	case CustomLegacy:
		return Custom
	case Force:
		return None
	default:
		return r
	}
}

// IsKnown reports whether p is in the registry.
func (p PayloadType) IsKnown() bool {
	for _, v := range payloadTypeVariants {
		if v == p {
			return true
		}
	}
	return false
}

// IsKnown reports whether r is in the registry.
func (r DisconnectReason) IsKnown() bool {
	for _, v := range disconnectReasonVariants {
		if v == r {
			return true
		}
	}
	return false
}

// IsKnown reports whether f is in the registry.
func (f RPCFlag) IsKnown() bool { return int(f) < rpcFlagCount }

// IsKnown reports whether t is in the registry.
func (t GameDataType) IsKnown() bool {
	for _, v := range gameDataTypeVariants {
		if v == t {
			return true
		}
	}
	return false
}

// IsKnown reports whether c is in the registry.
func (c PlayerColor) IsKnown() bool { return int(c) < playerColorCount }

// IsKnown reports whether t is in the registry.
func (t TaskType) IsKnown() bool { return int(t) < taskTypeCount }

// Logger Level Constants
// Used by LogInit.
const (
	DEBUG   = 1 << 4
	INFO    = 1 << 5
	WARNING = 1 << 6
	ERROR   = 1 << 7
	FATAL   = 1 << 8
)
