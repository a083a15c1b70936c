//go:generate go run ../codegen/gen_packet_codec.go -- .
package packet

// @enum:catchall=ShowInPopup
type CommandReplyType uint8

const (
	CommandReplyTypeShowInConsole CommandReplyType = 0
	CommandReplyTypeShowInPopup   CommandReplyType = 1
)

// @enum
type DespawnType uint8

const (
	DespawnTypeLifetimeEnded DespawnType = 0
	DespawnTypeCollided      DespawnType = 1
)

// ErrorType is sent in the server Error packet before the client is
// disconnected or a request is refused.
//
// @enum
type ErrorType uint8

const (
	ErrorTypeDisconnectedForPacketFlooding ErrorType = 1
	ErrorTypeBannedForPacketFlooding       ErrorType = 2
	ErrorTypeBanned                        ErrorType = 3
	ErrorTypeIdleRequiredBeforeRespawn     ErrorType = 5
	ErrorTypeAfkTimeout                    ErrorType = 6
	ErrorTypeKicked                        ErrorType = 7
	ErrorTypeInvalidLogin                  ErrorType = 8
	ErrorTypeIncorrectProtocolLevel        ErrorType = 9
	ErrorTypeAccountBanned                 ErrorType = 10
	ErrorTypeAccountAlreadyLoggedIn        ErrorType = 11
	ErrorTypeNoRespawnInBTR                ErrorType = 12
	ErrorTypeIdleRequiredBeforeSpectate    ErrorType = 13
	ErrorTypeNotEnoughUpgrades             ErrorType = 20
	ErrorTypeChatThrottled                 ErrorType = 30
	ErrorTypeFlagChangeThrottled           ErrorType = 31
	ErrorTypeUnknownCommand                ErrorType = 100
	ErrorTypeUnknownError                  ErrorType = 255
)

// FirewallStatus reads as Present for anything but an explicit Removed.
//
// @enum:catchall=Present
type FirewallStatus uint8

const (
	FirewallStatusRemoved FirewallStatus = 0
	FirewallStatusPresent FirewallStatus = 1
)

// @enum
type FlagUpdateType uint8

const (
	FlagUpdateTypePosition FlagUpdateType = 1
	FlagUpdateTypeCarrier  FlagUpdateType = 2
)

// @enum
type GameType uint8

const (
	GameTypeFFA GameType = 1
	GameTypeCTF GameType = 2
	GameTypeBTR GameType = 3
)

// @enum
type KeyCode uint8

const (
	KeyCodeUp      KeyCode = 1
	KeyCodeDown    KeyCode = 2
	KeyCodeLeft    KeyCode = 3
	KeyCodeRight   KeyCode = 4
	KeyCodeFire    KeyCode = 5
	KeyCodeSpecial KeyCode = 6
)

// The values of LeaveHorizonType have not been confirmed against a live server.
//
// @enum
type LeaveHorizonType uint8

const (
	LeaveHorizonTypePlayer LeaveHorizonType = 0
	LeaveHorizonTypeMob    LeaveHorizonType = 1
)

// MobType covers missiles and the collectible powerups.
//
// @enum
type MobType uint8

const (
	MobTypePredatorMissile      MobType = 1
	MobTypeGoliathMissile       MobType = 2
	MobTypeMohawkMissile        MobType = 3
	MobTypeUpgrade              MobType = 4
	MobTypeTornadoSingleMissile MobType = 5
	MobTypeTornadoTripleMissile MobType = 6
	MobTypeProwlerMissile       MobType = 7
	MobTypeShield               MobType = 8
	MobTypeInferno              MobType = 9
)

// @enum
type PlaneType uint8

const (
	PlaneTypePredator PlaneType = 1
	PlaneTypeGoliath  PlaneType = 2
	PlaneTypeMohawk   PlaneType = 3
	PlaneTypeTornado  PlaneType = 4
	PlaneTypeProwler  PlaneType = 5
)

// @enum
type PlayerLevelType uint8

const (
	PlayerLevelTypeLogin   PlayerLevelType = 0
	PlayerLevelTypeLevelUp PlayerLevelType = 1
)

// @enum
type PlayerStatus uint8

const (
	PlayerStatusAlive PlayerStatus = 0
	PlayerStatusDead  PlayerStatus = 1
)

// The values of PowerupType have not been confirmed against a live server.
//
// @enum
type PowerupType uint8

const (
	PowerupTypeShield  PowerupType = 1
	PowerupTypeInferno PowerupType = 2
)

// @enum
type ServerCustomType uint8

const (
	ServerCustomTypeBTRWin ServerCustomType = 1
	ServerCustomTypeCTFWin ServerCustomType = 2
)

// @enum
type ServerMessageType uint8

const (
	ServerMessageTypeTimeToGameStart ServerMessageType = 1
	ServerMessageTypeFlag            ServerMessageType = 2
	ServerMessageTypeShutdown        ServerMessageType = 15
	ServerMessageTypeBanner          ServerMessageType = 16
)

// @enum
type UpgradeType uint8

const (
	UpgradeTypeNone    UpgradeType = 0
	UpgradeTypeSpeed   UpgradeType = 1
	UpgradeTypeDefense UpgradeType = 2
	UpgradeTypeEnergy  UpgradeType = 3
	UpgradeTypeMissile UpgradeType = 4
)
