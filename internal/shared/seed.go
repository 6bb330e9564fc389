package shared

import (
	"time"

	"stay_directory/internal/domain"
)

// SeedProperties is the initial catalog the seeder loads into an empty
// store. Content mirrors the launch data set.
func SeedProperties() []domain.Property {
	now := time.Now().UTC()
	return []domain.Property{
		{
			ID:          "prop-1",
			Name:        "沖縄の絶景オーシャンビューホテル",
			Type:        domain.TypeHotel,
			Description: "美しい海を一望できる広々とした客室。プライベートビーチへのアクセスも抜群です。都会の喧騒を忘れ、心ゆくまでリラックスしてください。",
			Address:     "沖縄県那覇市1-2-3",
			Latitude:    26.2124,
			Longitude:   127.6809,
			Price:       25000,
			Rating:      5.0,
			Photos:      []string{"https://picsum.photos/seed/hotel1/800/600", "https://picsum.photos/seed/hotel1-room/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityParking, domain.AmenityNoSmoking, domain.AmenitySeparateBathToilet},
			Tags:        []domain.Tag{domain.TagOceanView, domain.TagCouple, domain.TagFamily},
			Reviews: []domain.Review{
				{ID: "rev-1", Author: "山田", Rating: 5, Comment: "最高の景色でした！"},
			},
			Announcements: []domain.Announcement{
				{ID: "ann-1", Title: "夏季限定プールオープン！", Content: "7月1日より屋外プールがオープンします。", CreatedAt: now},
			},
			PhoneNumber:     "098-123-4567",
			LineOfficialURL: "https://line.me/R/ti/p/%40linedevelopers",
			CheckinTime:     "15:00",
			CheckoutTime:    "11:00",
			OwnerUsername:   "owner1",
			OwnerPassword:   "password1",
			ViewCount:       120,
		},
		{
			ID:          "prop-2",
			Name:        "京都の静かな町家民泊",
			Type:        domain.TypeMinpaku,
			Description: "伝統的な日本の美しさを感じられる町家を一棟貸し。坪庭を眺めながら、静かな時間をお過ごしいただけます。キッチンも完備しています。",
			Address:     "京都府京都市中京区4-5-6",
			Latitude:    35.0116,
			Longitude:   135.7681,
			Price:       18000,
			Rating:      5.0,
			Photos:      []string{"https://picsum.photos/seed/minpaku1/800/600", "https://picsum.photos/seed/minpaku1-garden/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityNoSmoking, domain.AmenitySeparateBathToilet},
			Tags:        []domain.Tag{domain.TagWithKitchen, domain.TagCouple, domain.TagMountainView},
			Reviews: []domain.Review{
				{ID: "rev-2", Author: "佐藤", Rating: 5, Comment: "本当に素敵な空間でした。また利用したいです。"},
			},
			PhoneNumber:   "075-987-6543",
			CheckinTime:   "16:00",
			CheckoutTime:  "10:00",
			OwnerUsername: "owner2",
			OwnerPassword: "password2",
			ViewCount:     250,
		},
		{
			ID:          "prop-3",
			Name:        "新宿駅直結の高層シティホテル",
			Type:        domain.TypeHotel,
			Description: "ビジネスにも観光にも最適なロケーション。高層階からの夜景が自慢です。最新のフィットネスジムもご利用いただけます。",
			Address:     "東京都新宿区西新宿2-8-1",
			Latitude:    35.6909,
			Longitude:   139.6917,
			Price:       32000,
			Rating:      4.5,
			Photos:      []string{"https://picsum.photos/seed/shinjuku-hotel/800/600", "https://picsum.photos/seed/shinjuku-view/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityParking, domain.AmenityNoSmoking},
			Tags:        []domain.Tag{domain.TagNearStation, domain.TagWorkation, domain.TagLargeGroup},
			Reviews: []domain.Review{
				{ID: "rev-3", Author: "田中", Rating: 4, Comment: "アクセスが最高でした。"},
				{ID: "rev-4", Author: "Suzuki", Rating: 5, Comment: "The night view from the room was amazing!"},
			},
			PhoneNumber:     "03-1234-5678",
			LineOfficialURL: "https://line.me/R/ti/p/%40linedevelopers",
			CheckinTime:     "15:00",
			CheckoutTime:    "12:00",
			OwnerUsername:   "owner3",
			OwnerPassword:   "password3",
			ViewCount:       580,
		},
		{
			ID:          "prop-4",
			Name:        "箱根の森に佇む温泉旅館",
			Type:        domain.TypeHotel,
			Description: "豊かな自然に囲まれた静かな温泉旅館。源泉かけ流しの露天風呂で、日々の疲れを癒してください。",
			Address:     "神奈川県足柄下郡箱根町湯本123",
			Latitude:    35.233,
			Longitude:   139.106,
			Price:       45000,
			Rating:      5.0,
			Photos:      []string{"https://picsum.photos/seed/hakone-ryokan/800/600", "https://picsum.photos/seed/hakone-onsen/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityParking, domain.AmenitySeparateBathToilet},
			Tags:        []domain.Tag{domain.TagMountainView, domain.TagCouple},
			Reviews: []domain.Review{
				{ID: "rev-5", Author: "伊藤", Rating: 5, Comment: "温泉が最高でした。食事も美味しかったです。"},
			},
			PhoneNumber:   "0460-12-3456",
			CheckinTime:   "15:00",
			CheckoutTime:  "10:00",
			OwnerUsername: "owner4",
			OwnerPassword: "password4",
			ViewCount:     320,
		},
		{
			ID:          "prop-5",
			Name:        "大阪なんばのデザイナーズ民泊",
			Type:        domain.TypeMinpaku,
			Description: "道頓堀まで徒歩5分！遊び心あふれるインテリアが特徴のお部屋です。グループ旅行に最適。",
			Address:     "大阪府大阪市中央区難波千日前7-8-9",
			Latitude:    34.6653,
			Longitude:   135.5059,
			Price:       15000,
			Photos:      []string{"https://picsum.photos/seed/osaka-minpaku/800/600", "https://picsum.photos/seed/osaka-room/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityNoSmoking},
			Tags:        []domain.Tag{domain.TagNearStation, domain.TagLargeGroup, domain.TagWithKitchen},
			PhoneNumber: "06-9876-5432",
			CheckinTime: "16:00", CheckoutTime: "11:00",
			OwnerUsername: "owner5",
			OwnerPassword: "password5",
			ViewCount:     410,
		},
		{
			ID:          "prop-6",
			Name:        "北海道・富良野のコテージ",
			Type:        domain.TypeMinpaku,
			Description: "ラベンダー畑に囲まれた一棟貸しのコテージ。満点の星空と静寂な時間をお楽しみください。冬はスキーの拠点にも。",
			Address:     "北海道富良野市北の峰町10-11",
			Latitude:    43.344,
			Longitude:   142.383,
			Price:       28000,
			Rating:      5.0,
			Photos:      []string{"https://picsum.photos/seed/furano-cottage/800/600", "https://picsum.photos/seed/furano-lavender/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityParking, domain.AmenitySeparateBathToilet},
			Tags:        []domain.Tag{domain.TagMountainView, domain.TagFamily, domain.TagLargeGroup, domain.TagWithKitchen},
			Reviews: []domain.Review{
				{ID: "rev-6", Author: "加藤", Rating: 5, Comment: "家族で最高の思い出ができました。"},
			},
			PhoneNumber:   "0167-11-2233",
			CheckinTime:   "15:00",
			CheckoutTime:  "10:00",
			OwnerUsername: "owner6",
			OwnerPassword: "password6",
			ViewCount:     180,
		},
		{
			ID:          "prop-7",
			Name:        "福岡・天神のビジネスホテル",
			Type:        domain.TypeHotel,
			Description: "天神の中心部に位置し、ビジネスやショッピングに便利。快適なベッドと機能的なデスクで、出張をサポートします。",
			Address:     "福岡県福岡市中央区天神3-3-3",
			Latitude:    33.5913,
			Longitude:   130.3988,
			Price:       12000,
			Photos:      []string{"https://picsum.photos/seed/fukuoka-hotel/800/600", "https://picsum.photos/seed/fukuoka-desk/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityNoSmoking},
			Tags:        []domain.Tag{domain.TagWorkation, domain.TagNearStation},
			Announcements: []domain.Announcement{
				{ID: "ann-2", Title: "朝食ビュッフェリニューアル", Content: "和洋中のメニューがさらに充実しました。", CreatedAt: now},
			},
			PhoneNumber:     "092-555-7788",
			LineOfficialURL: "https://line.me/R/ti/p/%40linedevelopers",
			CheckinTime:     "15:00",
			CheckoutTime:    "11:00",
			OwnerUsername:   "owner7",
			OwnerPassword:   "password7",
			ViewCount:       650,
		},
		{
			ID:          "prop-8",
			Name:        "軽井沢の森の隠れ家",
			Type:        domain.TypeMinpaku,
			Description: "浅間山を望む、静かな森の中に佇む一軒家。暖炉のあるリビングで、ゆったりとした時間をお過ごしください。",
			Address:     "長野県北佐久郡軽井沢町長倉12-34",
			Latitude:    36.348,
			Longitude:   138.632,
			Price:       35000,
			Rating:      5.0,
			Photos:      []string{"https://picsum.photos/seed/karuizawa-house/800/600", "https://picsum.photos/seed/karuizawa-living/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityParking, domain.AmenitySeparateBathToilet},
			Tags:        []domain.Tag{domain.TagMountainView, domain.TagCouple, domain.TagFamily, domain.TagWithKitchen},
			Reviews: []domain.Review{
				{ID: "rev-7", Author: "高橋", Rating: 5, Comment: "非日常を味わえました。また来たいです。"},
			},
			PhoneNumber:   "0267-41-1111",
			CheckinTime:   "16:00",
			CheckoutTime:  "11:00",
			OwnerUsername: "owner8",
			OwnerPassword: "password8",
			ViewCount:     290,
		},
		{
			ID:          "prop-9",
			Name:        "金沢ひがし茶屋街の宿",
			Type:        domain.TypeMinpaku,
			Description: "歴史的な街並みに溶け込む、趣のあるお宿です。金沢の文化を肌で感じながら、特別な滞在をお楽しみください。",
			Address:     "石川県金沢市東山1-13-2",
			Latitude:    36.572,
			Longitude:   136.669,
			Price:       22000,
			Photos:      []string{"https://picsum.photos/seed/kanazawa-chaya/800/600", "https://picsum.photos/seed/kanazawa-room/800/600"},
			Amenities:   []domain.Amenity{domain.AmenityWifi, domain.AmenityNoSmoking, domain.AmenitySeparateBathToilet},
			Tags:        []domain.Tag{domain.TagCouple, domain.TagNearStation},
			PhoneNumber: "076-252-8888",
			CheckinTime: "15:00", CheckoutTime: "10:00",
			OwnerUsername: "owner9",
			OwnerPassword: "password9",
			ViewCount:     330,
		},
	}
}
