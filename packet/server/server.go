//go:generate go run ../../codegen/gen_packet_codec.go -registry ServerPacket -- .

// Package server holds the packets a game server sends to its clients.
package server

import "github.com/gstoney/airmash/packet"

// Serialize encodes p, which must be one of the packets of this package.
func Serialize(p packet.Packet) ([]byte, error) {
	return Registry.Serialize(p)
}

// Deserialize decodes exactly one server packet from b.
func Deserialize(b []byte) (packet.Packet, error) {
	return Registry.Deserialize(b)
}

// @gen:r,w,elem
type LoginPlayer struct {
	ID       uint16              `field:"U16"`
	Status   packet.PlayerStatus `field:"PlayerStatus"`
	Level    uint8               `field:"U8"`
	Name     string              `field:"TextSmall"`
	Type     packet.PlaneType    `field:"PlaneType"`
	Team     uint16              `field:"U16"`
	Pos      packet.Vector2      `field:"Pos"`
	Rot      float32             `field:"Rotation"`
	Flag     packet.FlagCode     `field:"FlagCode"`
	Upgrades packet.Upgrades     `field:"Upgrades"`
}

// Login is the reply to a client Login. It may be followed by an extension
// record, in which case it decodes as a Login2.
//
// @gen:r,w,reg
type Login struct {
	Success  bool            `field:"Bool"`
	PlayerID uint16          `field:"U16" name:"id"`
	Team     uint16          `field:"U16"`
	Clock    uint32          `field:"U32"`
	Token    string          `field:"TextSmall"`
	Type     packet.GameType `field:"GameType"`
	Room     string          `field:"TextSmall"`
	Players  []LoginPlayer   `field:"ArrayLarge" inner:"LoginPlayer"`
}

func (p Login) ID() uint8 {
	return 0
}

// @gen:r,w,reg
type Backup struct{}

func (p Backup) ID() uint8 {
	return 1
}

// @gen:r,w,reg
type Ping struct {
	Clock uint32 `field:"U32"`
	Num   uint32 `field:"U32"`
}

func (p Ping) ID() uint8 {
	return 5
}

// @gen:r,w,reg
type PingResult struct {
	Ping         uint16 `field:"U16"`
	PlayersTotal uint32 `field:"U32"`
	PlayersGame  uint32 `field:"U32"`
}

func (p PingResult) ID() uint8 {
	return 6
}

// @gen:r,w,reg
type Ack struct{}

func (p Ack) ID() uint8 {
	return 7
}

// @gen:r,w,reg
type Error struct {
	Error packet.ErrorType `field:"ErrorType"`
}

func (p Error) ID() uint8 {
	return 8
}

// @gen:r,w,reg
type CommandReply struct {
	Type packet.CommandReplyType `field:"CommandReplyType"`
	Text string                  `field:"TextLarge"`
}

func (p CommandReply) ID() uint8 {
	return 9
}

// @gen:r,w,reg
type PlayerNew struct {
	PlayerID uint16              `field:"U16" name:"id"`
	Status   packet.PlayerStatus `field:"PlayerStatus"`
	Name     string              `field:"TextSmall"`
	Type     packet.PlaneType    `field:"PlaneType"`
	Team     uint16              `field:"U16"`
	Pos      packet.Vector2      `field:"Pos"`
	Rot      float32             `field:"Rotation"`
	Flag     packet.FlagCode     `field:"FlagCode"`
	Upgrades packet.Upgrades     `field:"Upgrades"`
}

func (p PlayerNew) ID() uint8 {
	return 10
}

// @gen:r,w,reg
type PlayerLeave struct {
	PlayerID uint16 `field:"U16" name:"id"`
}

func (p PlayerLeave) ID() uint8 {
	return 11
}

// @gen:r,w,reg
type PlayerUpdate struct {
	Clock    uint32                `field:"U32"`
	PlayerID uint16                `field:"U16" name:"id"`
	Keystate packet.ServerKeyState `field:"ServerKeyState"`
	Upgrades packet.Upgrades       `field:"Upgrades"`
	Pos      packet.Vector2        `field:"Pos24"`
	Rot      float32               `field:"Rotation"`
	Speed    packet.Vector2        `field:"Vel"`
}

func (p PlayerUpdate) ID() uint8 {
	return 12
}

// @gen:r,w,elem
type PlayerFireProjectile struct {
	ID       uint16         `field:"U16"`
	Type     packet.MobType `field:"MobType"`
	Pos      packet.Vector2 `field:"Pos"`
	Speed    packet.Vector2 `field:"Vel"`
	Accel    packet.Vector2 `field:"Accel"`
	MaxSpeed float32        `field:"Speed"`
}

// @gen:r,w,reg
type PlayerFire struct {
	Clock       uint32                 `field:"U32"`
	PlayerID    uint16                 `field:"U16" name:"id"`
	Energy      float32                `field:"Energy"`
	EnergyRegen float32                `field:"Regen"`
	Projectiles []PlayerFireProjectile `field:"ArraySmall" inner:"PlayerFireProjectile"`
}

func (p PlayerFire) ID() uint8 {
	return 13
}

// @gen:r,w,elem
type PlayerHitPlayer struct {
	ID          uint16  `field:"U16"`
	Health      float32 `field:"Energy"`
	HealthRegen float32 `field:"Regen"`
}

// PlayerHit reports the players damaged by one missile.
//
// @gen:r,w,reg
type PlayerHit struct {
	MobID   uint16            `field:"U16" name:"id"`
	Type    packet.MobType    `field:"MobType"`
	Pos     packet.Vector2    `field:"Pos"`
	Owner   uint16            `field:"U16"`
	Players []PlayerHitPlayer `field:"ArraySmall" inner:"PlayerHitPlayer"`
}

func (p PlayerHit) ID() uint8 {
	return 14
}

// @gen:r,w,reg
type PlayerRespawn struct {
	PlayerID uint16          `field:"U16" name:"id"`
	Pos      packet.Vector2  `field:"Pos24"`
	Rot      float32         `field:"Rotation"`
	Upgrades packet.Upgrades `field:"Upgrades"`
}

func (p PlayerRespawn) ID() uint8 {
	return 15
}

// @gen:r,w,reg
type PlayerFlag struct {
	PlayerID uint16          `field:"U16" name:"id"`
	Flag     packet.FlagCode `field:"FlagCode"`
}

func (p PlayerFlag) ID() uint8 {
	return 16
}

// @gen:r,w,reg
type PlayerKill struct {
	PlayerID uint16                  `field:"U16" name:"id"`
	Killer   packet.Optional[uint16] `field:"OptionPlayer"`
	Pos      packet.Vector2          `field:"Pos"`
}

func (p PlayerKill) ID() uint8 {
	return 17
}

// @gen:r,w,reg
type PlayerUpgrade struct {
	Upgrades uint16             `field:"U16"`
	Type     packet.UpgradeType `field:"UpgradeType"`
	Speed    uint8              `field:"U8"`
	Defense  uint8              `field:"U8"`
	Energy   uint8              `field:"U8"`
	Missile  uint8              `field:"U8"`
}

func (p PlayerUpgrade) ID() uint8 {
	return 18
}

// @gen:r,w,reg
type PlayerType struct {
	PlayerID uint16           `field:"U16" name:"id"`
	Type     packet.PlaneType `field:"PlaneType"`
}

func (p PlayerType) ID() uint8 {
	return 19
}

// @gen:r,w,reg
type PlayerPowerup struct {
	Type     packet.PowerupType `field:"PowerupType"`
	Duration uint32             `field:"U32"`
}

func (p PlayerPowerup) ID() uint8 {
	return 20
}

// @gen:r,w,reg
type PlayerLevel struct {
	PlayerID uint16                 `field:"U16" name:"id"`
	Type     packet.PlayerLevelType `field:"PlayerLevelType"`
	Level    uint8                  `field:"U8"`
}

func (p PlayerLevel) ID() uint8 {
	return 21
}

// @gen:r,w,elem
type PlayerReteamPlayer struct {
	ID   uint16 `field:"U16"`
	Team uint16 `field:"U16"`
}

// @gen:r,w,reg
type PlayerReteam struct {
	Players []PlayerReteamPlayer `field:"ArrayLarge" inner:"PlayerReteamPlayer"`
}

func (p PlayerReteam) ID() uint8 {
	return 22
}

// GameFlag moves a CTF flag or hands it to a carrier. Flag is the team
// the flag belongs to.
//
// @gen:r,w,reg
type GameFlag struct {
	Type     packet.FlagUpdateType   `field:"FlagUpdateType"`
	Flag     uint8                   `field:"U8"`
	Carrier  packet.Optional[uint16] `field:"OptionPlayer" name:"id"`
	Pos      packet.Vector2          `field:"Pos24"`
	BlueTeam uint8                   `field:"U8" name:"blueteam"`
	RedTeam  uint8                   `field:"U8" name:"redteam"`
}

func (p GameFlag) ID() uint8 {
	return 30
}

// @gen:r,w,reg
type GameSpectate struct {
	PlayerID uint16 `field:"U16" name:"id"`
}

func (p GameSpectate) ID() uint8 {
	return 31
}

// @gen:r,w,reg
type GamePlayersAlive struct {
	Players uint16 `field:"U16"`
}

func (p GamePlayersAlive) ID() uint8 {
	return 32
}

// GameFirewall updates the closing BTR ring.
//
// @gen:r,w,reg
type GameFirewall struct {
	Type   uint8                 `field:"U8"`
	Status packet.FirewallStatus `field:"FirewallStatus"`
	Pos    packet.Vector2        `field:"Pos"`
	Radius float32               `field:"F32"`
	Speed  float32               `field:"F32"`
}

func (p GameFirewall) ID() uint8 {
	return 33
}

// @gen:r,w,elem
type EventRepelPlayer struct {
	ID          uint16                `field:"U16"`
	Keystate    packet.ServerKeyState `field:"ServerKeyState"`
	Pos         packet.Vector2        `field:"Pos"`
	Rot         float32               `field:"Rotation"`
	Speed       packet.Vector2        `field:"Vel"`
	Energy      float32               `field:"Energy"`
	EnergyRegen float32               `field:"Regen"`
	Health      float32               `field:"Energy"`
	HealthRegen float32               `field:"Regen"`
}

// @gen:r,w,elem
type EventRepelMob struct {
	ID       uint16         `field:"U16"`
	Type     packet.MobType `field:"MobType"`
	Pos      packet.Vector2 `field:"Pos"`
	Speed    packet.Vector2 `field:"Vel"`
	Accel    packet.Vector2 `field:"Accel"`
	MaxSpeed float32        `field:"Speed"`
}

// EventRepel is sent when a Goliath repels nearby players and missiles.
//
// @gen:r,w,reg
type EventRepel struct {
	Clock       uint32             `field:"U32"`
	PlayerID    uint16             `field:"U16" name:"id"`
	Pos         packet.Vector2     `field:"Pos"`
	Rot         float32            `field:"Rotation"`
	Speed       packet.Vector2     `field:"Vel"`
	Energy      float32            `field:"Energy"`
	EnergyRegen float32            `field:"Regen"`
	Players     []EventRepelPlayer `field:"ArraySmall" inner:"EventRepelPlayer"`
	Mobs        []EventRepelMob    `field:"ArraySmall" inner:"EventRepelMob"`
}

func (p EventRepel) ID() uint8 {
	return 40
}

// @gen:r,w,reg
type EventBoost struct {
	Clock       uint32         `field:"U32"`
	PlayerID    uint16         `field:"U16" name:"id"`
	Boost       bool           `field:"Bool"`
	Pos         packet.Vector2 `field:"Pos24"`
	Rot         float32        `field:"Rotation"`
	Speed       packet.Vector2 `field:"Vel"`
	Energy      float32        `field:"Energy"`
	EnergyRegen float32        `field:"Regen"`
}

func (p EventBoost) ID() uint8 {
	return 41
}

// @gen:r,w,reg
type EventBounce struct {
	Clock    uint32                `field:"U32"`
	PlayerID uint16                `field:"U16" name:"id"`
	Keystate packet.ServerKeyState `field:"ServerKeyState"`
	Pos      packet.Vector2        `field:"Pos24"`
	Rot      float32               `field:"Rotation"`
	Speed    packet.Vector2        `field:"Vel"`
}

func (p EventBounce) ID() uint8 {
	return 42
}

// @gen:r,w,reg
type EventStealth struct {
	PlayerID    uint16  `field:"U16" name:"id"`
	State       bool    `field:"Bool"`
	Energy      float32 `field:"Energy"`
	EnergyRegen float32 `field:"Regen"`
}

func (p EventStealth) ID() uint8 {
	return 43
}

// EventLeaveHorizon tells the client to forget a player or mob. EntityID
// is a player id or a mob id depending on Type.
//
// @gen:r,w,reg
type EventLeaveHorizon struct {
	Type     packet.LeaveHorizonType `field:"LeaveHorizonType"`
	EntityID uint16                  `field:"U16" name:"id"`
}

func (p EventLeaveHorizon) ID() uint8 {
	return 44
}

// @gen:r,w,reg
type MobUpdate struct {
	Clock    uint32         `field:"U32"`
	MobID    uint16         `field:"U16" name:"id"`
	Type     packet.MobType `field:"MobType"`
	Pos      packet.Vector2 `field:"Pos"`
	Speed    packet.Vector2 `field:"Vel"`
	Accel    packet.Vector2 `field:"Accel"`
	MaxSpeed float32        `field:"Speed"`
}

func (p MobUpdate) ID() uint8 {
	return 60
}

// MobUpdateStationary places a powerup. Its position is sent as raw f32s.
//
// @gen:r,w,reg
type MobUpdateStationary struct {
	MobID uint16         `field:"U16" name:"id"`
	Type  packet.MobType `field:"MobType"`
	Pos   packet.Vector2 `field:"PosF32"`
}

func (p MobUpdateStationary) ID() uint8 {
	return 61
}

// @gen:r,w,reg
type MobDespawn struct {
	MobID uint16             `field:"U16" name:"id"`
	Type  packet.DespawnType `field:"DespawnType"`
}

func (p MobDespawn) ID() uint8 {
	return 62
}

// @gen:r,w,reg
type MobDespawnCoords struct {
	MobID uint16         `field:"U16" name:"id"`
	Type  packet.MobType `field:"MobType"`
	Pos   packet.Vector2 `field:"Pos"`
}

func (p MobDespawnCoords) ID() uint8 {
	return 63
}

// @gen:r,w,reg
type ChatPublic struct {
	PlayerID uint16 `field:"U16" name:"id"`
	Text     string `field:"TextSmall"`
}

func (p ChatPublic) ID() uint8 {
	return 70
}

// @gen:r,w,reg
type ChatTeam struct {
	PlayerID uint16 `field:"U16" name:"id"`
	Text     string `field:"TextSmall"`
}

func (p ChatTeam) ID() uint8 {
	return 71
}

// @gen:r,w,reg
type ChatSay struct {
	PlayerID uint16 `field:"U16" name:"id"`
	Text     string `field:"TextSmall"`
}

func (p ChatSay) ID() uint8 {
	return 72
}

// @gen:r,w,reg
type ChatWhisper struct {
	From uint16 `field:"U16"`
	To   uint16 `field:"U16"`
	Text string `field:"TextSmall"`
}

func (p ChatWhisper) ID() uint8 {
	return 73
}

// @gen:r,w,reg
type ChatVoteMutePassed struct {
	PlayerID uint16 `field:"U16" name:"id"`
}

func (p ChatVoteMutePassed) ID() uint8 {
	return 78
}

// @gen:r,w,reg
type ChatVoteMuted struct{}

func (p ChatVoteMuted) ID() uint8 {
	return 79
}

// @gen:r,w,reg
type ScoreUpdate struct {
	PlayerID    uint16 `field:"U16" name:"id"`
	Score       uint32 `field:"U32"`
	Earnings    uint32 `field:"U32"`
	Upgrades    uint16 `field:"U16"`
	TotalKills  uint32 `field:"U32"`
	TotalDeaths uint32 `field:"U32"`
}

func (p ScoreUpdate) ID() uint8 {
	return 80
}

// @gen:r,w,elem
type ScoreBoardData struct {
	ID    uint16 `field:"U16"`
	Score uint32 `field:"U32"`
	Level uint8  `field:"U8"`
}

// ScoreBoardRanking is a player's coarse minimap position. Pos is absent
// for players that are not shown.
//
// @gen:r,w,elem
type ScoreBoardRanking struct {
	ID  uint16                          `field:"U16"`
	Pos packet.Optional[packet.Vector2] `field:"LowResPos"`
}

// @gen:r,w,reg
type ScoreBoard struct {
	Data     []ScoreBoardData    `field:"ArrayLarge" inner:"ScoreBoardData"`
	Rankings []ScoreBoardRanking `field:"ArrayLarge" inner:"ScoreBoardRanking"`
}

func (p ScoreBoard) ID() uint8 {
	return 81
}

// @gen:r,w,elem
type ScoreDetailedFFAEntry struct {
	ID     uint16  `field:"U16"`
	Level  uint8   `field:"U8"`
	Score  uint32  `field:"U32"`
	Kills  uint16  `field:"U16"`
	Deaths uint16  `field:"U16"`
	Damage float32 `field:"F32"`
	Ping   uint16  `field:"U16"`
}

// @gen:r,w,reg
type ScoreDetailedFFA struct {
	Scores []ScoreDetailedFFAEntry `field:"ArrayLarge" inner:"ScoreDetailedFFAEntry"`
}

func (p ScoreDetailedFFA) ID() uint8 {
	return 82
}

// @gen:r,w,elem
type ScoreDetailedCTFEntry struct {
	ID       uint16  `field:"U16"`
	Level    uint8   `field:"U8"`
	Captures uint16  `field:"U16"`
	Score    uint32  `field:"U32"`
	Kills    uint16  `field:"U16"`
	Deaths   uint16  `field:"U16"`
	Damage   float32 `field:"F32"`
	Ping     uint16  `field:"U16"`
}

// @gen:r,w,reg
type ScoreDetailedCTF struct {
	Scores []ScoreDetailedCTFEntry `field:"ArrayLarge" inner:"ScoreDetailedCTFEntry"`
}

func (p ScoreDetailedCTF) ID() uint8 {
	return 83
}

// @gen:r,w,elem
type ScoreDetailedBTREntry struct {
	ID     uint16  `field:"U16"`
	Level  uint8   `field:"U8"`
	Alive  bool    `field:"Bool"`
	Wins   uint16  `field:"U16"`
	Score  uint32  `field:"U32"`
	Kills  uint16  `field:"U16"`
	Deaths uint16  `field:"U16"`
	Damage float32 `field:"F32"`
	Ping   uint16  `field:"U16"`
}

// @gen:r,w,reg
type ScoreDetailedBTR struct {
	Scores []ScoreDetailedBTREntry `field:"ArrayLarge" inner:"ScoreDetailedBTREntry"`
}

func (p ScoreDetailedBTR) ID() uint8 {
	return 84
}

// @gen:r,w,reg
type ServerMessage struct {
	Type     packet.ServerMessageType `field:"ServerMessageType"`
	Duration uint32                   `field:"U32"`
	Text     string                   `field:"TextLarge"`
}

func (p ServerMessage) ID() uint8 {
	return 90
}

// ServerCustom carries the end of game summary as JSON in Data.
// See CTFData and BTRData.
//
// @gen:r,w,reg
type ServerCustom struct {
	Type packet.ServerCustomType `field:"ServerCustomType"`
	Data string                  `field:"TextLarge"`
}

func (p ServerCustom) ID() uint8 {
	return 91
}
