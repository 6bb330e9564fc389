package search

// Region groups prefectures for coarse-grained search. Region search is
// plain substring containment of a prefecture name in the property
// address, not structured geocoding.
type Region struct {
	Name        string
	Prefectures []string
}

var Regions = []Region{
	{
		Name:        "北海道・東北",
		Prefectures: []string{"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県"},
	},
	{
		Name:        "関東",
		Prefectures: []string{"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県"},
	},
	{
		Name:        "北陸・甲信越",
		Prefectures: []string{"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県"},
	},
	{
		Name:        "東海",
		Prefectures: []string{"岐阜県", "静岡県", "愛知県", "三重県"},
	},
	{
		Name:        "関西（近畿）",
		Prefectures: []string{"滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県"},
	},
	{
		Name:        "中国・四国",
		Prefectures: []string{"鳥取県", "島根県", "岡山県", "広島県", "山口県", "徳島県", "香川県", "愛媛県", "高知県"},
	},
	{
		Name:        "九州・沖縄",
		Prefectures: []string{"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県"},
	},
}

func RegionByName(name string) (Region, bool) {
	for _, r := range Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
