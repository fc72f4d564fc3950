package models

// PrizeType selects which prize pool a draw or listing applies to.
type PrizeType string

const (
	PrizeTypeParent  PrizeType = "parent"
	PrizeTypeTeacher PrizeType = "teacher"
	PrizeTypeAll     PrizeType = "all"
)

// Valid reports whether t is a known prize type.
func (t PrizeType) Valid() bool {
	return t == PrizeTypeParent || t == PrizeTypeTeacher || t == PrizeTypeAll
}

// Prize is one lucky-draw outcome. Weight is its relative probability
// within the pool it is drawn from.
type Prize struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weight      int       `json:"weight"`
	Type        PrizeType `json:"type"`
}

var defaultParentPrizes = []Prize{
	{Name: "🍫 巧克力", Description: "一块巧克力", Weight: 20, Type: PrizeTypeParent},
	{Name: "🎮 游戏时间", Description: "15分钟游戏", Weight: 15, Type: PrizeTypeParent},
	{Name: "🍦 冰淇淋", Description: "一个冰淇淋", Weight: 15, Type: PrizeTypeParent},
	{Name: "💪 继续加油", Description: "下次好运", Weight: 50, Type: PrizeTypeParent},
}

var defaultTeacherPrizes = []Prize{
	{Name: "⭐ 积分+50", Description: "+50积分", Weight: 15, Type: PrizeTypeTeacher},
	{Name: "📖 免作业卡", Description: "一次免作业", Weight: 10, Type: PrizeTypeTeacher},
	{Name: "🌟 表扬信", Description: "老师表扬信", Weight: 25, Type: PrizeTypeTeacher},
	{Name: "💪 再接再厉", Description: "下次好运", Weight: 50, Type: PrizeTypeTeacher},
}

// DefaultPrizes returns the built-in prize list used when no custom prizes
// are configured for the given type.
func DefaultPrizes(t PrizeType) []Prize {
	switch t {
	case PrizeTypeParent:
		return append([]Prize(nil), defaultParentPrizes...)
	case PrizeTypeTeacher:
		return append([]Prize(nil), defaultTeacherPrizes...)
	default:
		all := append([]Prize(nil), defaultParentPrizes...)
		return append(all, defaultTeacherPrizes...)
	}
}
