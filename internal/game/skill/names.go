package skill

// skillNames maps skill id → Korean display name.
var skillNames = map[string]string{
	"ABC_CHASING_BREAK":     "체이싱 브레이크",
	"ABC_ABYSS_SQUARE":      "어비스 스퀘어",
	"ABC_DEFT_STAB":         "데프트 스탭",
	"MT_RUSH_STRIKE":        "러쉬 스트라이크",
	"MT_POWERFUL_SMASH":     "파워풀 스매쉬",
	"MT_TRIPLE_BOWLING":     "트리플 볼링 배쉬",
	"MT_MAGNUM_BREAK":       "매그넘 브레이크",
	"SK_CHULL_HO_BATTERING": "철호포",
	"SH_HAWK_HUNT":          "호크 헌팅",
	"SH_WIND_FLOW":          "윈드 호크",
	"NW_OBLIVION_CURSE":     "오블리비언 커즈",
	"NW_DEATH_NOTCH":        "데스 노치",
}

// SkillName returns the display name of a skill id, or the id itself when unknown.
func SkillName(id string) string {
	if name, ok := skillNames[id]; ok {
		return name
	}
	return id
}
