package config

import "departure-board-service/internal/domain/entity"

// DefaultDestinations is the built-in localization data. Rows stored in
// the m_destination_names table override these by canonical name.
func DefaultDestinations() []entity.Destination {
	return []entity.Destination{
		// Domestic
		{CanonicalName: "Sapporo", Names: entity.DestinationNames{Ja: "札幌", En: "Sapporo", Zh: "札幌"}, MultiAirport: true, SuppressCode: true},
		{CanonicalName: "Osaka", Names: entity.DestinationNames{Ja: "大阪", En: "Osaka", Zh: "大阪"}, MultiAirport: true, SuppressCode: true},
		{CanonicalName: "Tokyo", Names: entity.DestinationNames{Ja: "東京", En: "Tokyo", Zh: "东京"}, MultiAirport: true, SuppressCode: true},
		{CanonicalName: "Fukuoka", Names: entity.DestinationNames{Ja: "福岡", En: "Fukuoka", Zh: "福冈"}},
		{CanonicalName: "Naha", Names: entity.DestinationNames{Ja: "那覇", En: "Okinawa", Zh: "那霸"}},
		{CanonicalName: "Okinawa", Names: entity.DestinationNames{Ja: "那覇", En: "Okinawa", Zh: "那霸"}},
		{CanonicalName: "Nagoya", Names: entity.DestinationNames{Ja: "名古屋", En: "Nagoya", Zh: "名古屋"}},
		{CanonicalName: "Kagoshima", Names: entity.DestinationNames{Ja: "鹿児島", En: "Kagoshima", Zh: "鹿儿岛"}},
		{CanonicalName: "Kumamoto", Names: entity.DestinationNames{Ja: "熊本", En: "Kumamoto", Zh: "熊本"}},
		{CanonicalName: "Nagasaki", Names: entity.DestinationNames{Ja: "長崎", En: "Nagasaki", Zh: "长崎"}},
		{CanonicalName: "Hiroshima", Names: entity.DestinationNames{Ja: "広島", En: "Hiroshima", Zh: "广岛"}},
		{CanonicalName: "Matsuyama", Names: entity.DestinationNames{Ja: "松山", En: "Matsuyama", Zh: "松山"}},
		{CanonicalName: "Takamatsu", Names: entity.DestinationNames{Ja: "高松", En: "Takamatsu", Zh: "高松"}},
		{CanonicalName: "Kochi", Names: entity.DestinationNames{Ja: "高知", En: "Kochi", Zh: "高知"}},
		{CanonicalName: "Okayama", Names: entity.DestinationNames{Ja: "岡山", En: "Okayama", Zh: "冈山"}},
		{CanonicalName: "Komatsu", Names: entity.DestinationNames{Ja: "小松", En: "Komatsu", Zh: "小松"}},
		{CanonicalName: "Sendai", Names: entity.DestinationNames{Ja: "仙台", En: "Sendai", Zh: "仙台"}},
		{CanonicalName: "Aomori", Names: entity.DestinationNames{Ja: "青森", En: "Aomori", Zh: "青森"}},
		{CanonicalName: "Akita", Names: entity.DestinationNames{Ja: "秋田", En: "Akita", Zh: "秋田"}},
		{CanonicalName: "Hakodate", Names: entity.DestinationNames{Ja: "函館", En: "Hakodate", Zh: "函馆"}},
		{CanonicalName: "Asahikawa", Names: entity.DestinationNames{Ja: "旭川", En: "Asahikawa", Zh: "旭川"}},
		{CanonicalName: "Kushiro", Names: entity.DestinationNames{Ja: "釧路", En: "Kushiro", Zh: "钏路"}},
		{CanonicalName: "Miyazaki", Names: entity.DestinationNames{Ja: "宮崎", En: "Miyazaki", Zh: "宫崎"}},
		{CanonicalName: "Oita", Names: entity.DestinationNames{Ja: "大分", En: "Oita", Zh: "大分"}},
		{CanonicalName: "Ishigaki", Names: entity.DestinationNames{Ja: "石垣", En: "Ishigaki", Zh: "石垣"}},
		{CanonicalName: "Miyako", Names: entity.DestinationNames{Ja: "宮古", En: "Miyako", Zh: "宫古"}},

		// International
		{CanonicalName: "Seoul", Names: entity.DestinationNames{Ja: "ソウル", En: "Seoul", Zh: "首尔"}, MultiAirport: true},
		{CanonicalName: "Busan", Names: entity.DestinationNames{Ja: "釜山", En: "Busan", Zh: "釜山"}},
		{CanonicalName: "Shanghai", Names: entity.DestinationNames{Ja: "上海", En: "Shanghai", Zh: "上海"}, MultiAirport: true},
		{CanonicalName: "Beijing", Names: entity.DestinationNames{Ja: "北京", En: "Beijing", Zh: "北京"}, MultiAirport: true},
		{CanonicalName: "Guangzhou", Names: entity.DestinationNames{Ja: "広州", En: "Guangzhou", Zh: "广州"}},
		{CanonicalName: "Shenzhen", Names: entity.DestinationNames{Ja: "深圳", En: "Shenzhen", Zh: "深圳"}},
		{CanonicalName: "Hong Kong", Names: entity.DestinationNames{Ja: "香港", En: "Hong Kong", Zh: "香港"}},
		{CanonicalName: "Taipei", Names: entity.DestinationNames{Ja: "台北", En: "Taipei", Zh: "台北"}, MultiAirport: true},
		{CanonicalName: "Manila", Names: entity.DestinationNames{Ja: "マニラ", En: "Manila", Zh: "马尼拉"}},
		{CanonicalName: "Bangkok", Names: entity.DestinationNames{Ja: "バンコク", En: "Bangkok", Zh: "曼谷"}, MultiAirport: true},
		{CanonicalName: "Singapore", Names: entity.DestinationNames{Ja: "シンガポール", En: "Singapore", Zh: "新加坡"}},
		{CanonicalName: "Kuala Lumpur", Names: entity.DestinationNames{Ja: "クアラルンプール", En: "Kuala Lumpur", Zh: "吉隆坡"}},
		{CanonicalName: "Hanoi", Names: entity.DestinationNames{Ja: "ハノイ", En: "Hanoi", Zh: "河内"}},
		{CanonicalName: "Ho Chi Minh City", Names: entity.DestinationNames{Ja: "ホーチミン", En: "Ho Chi Minh City", Zh: "胡志明市"}},
		{CanonicalName: "Jakarta", Names: entity.DestinationNames{Ja: "ジャカルタ", En: "Jakarta", Zh: "雅加达"}},
		{CanonicalName: "Delhi", Names: entity.DestinationNames{Ja: "デリー", En: "Delhi", Zh: "德里"}},
		{CanonicalName: "Sydney", Names: entity.DestinationNames{Ja: "シドニー", En: "Sydney", Zh: "悉尼"}},
		{CanonicalName: "Honolulu", Names: entity.DestinationNames{Ja: "ホノルル", En: "Honolulu", Zh: "檀香山"}},
		{CanonicalName: "Los Angeles", Names: entity.DestinationNames{Ja: "ロサンゼルス", En: "Los Angeles", Zh: "洛杉矶"}},
		{CanonicalName: "San Francisco", Names: entity.DestinationNames{Ja: "サンフランシスコ", En: "San Francisco", Zh: "旧金山"}},
		{CanonicalName: "Seattle", Names: entity.DestinationNames{Ja: "シアトル", En: "Seattle", Zh: "西雅图"}},
		{CanonicalName: "Vancouver", Names: entity.DestinationNames{Ja: "バンクーバー", En: "Vancouver", Zh: "温哥华"}},
		{CanonicalName: "Chicago", Names: entity.DestinationNames{Ja: "シカゴ", En: "Chicago", Zh: "芝加哥"}, MultiAirport: true},
		{CanonicalName: "New York", Names: entity.DestinationNames{Ja: "ニューヨーク", En: "New York", Zh: "纽约"}, MultiAirport: true},
		{CanonicalName: "Washington", Names: entity.DestinationNames{Ja: "ワシントン", En: "Washington", Zh: "华盛顿"}},
		{CanonicalName: "Dallas", Names: entity.DestinationNames{Ja: "ダラス", En: "Dallas", Zh: "达拉斯"}},
		{CanonicalName: "London", Names: entity.DestinationNames{Ja: "ロンドン", En: "London", Zh: "伦敦"}, MultiAirport: true},
		{CanonicalName: "Paris", Names: entity.DestinationNames{Ja: "パリ", En: "Paris", Zh: "巴黎"}, MultiAirport: true},
		{CanonicalName: "Frankfurt", Names: entity.DestinationNames{Ja: "フランクフルト", En: "Frankfurt", Zh: "法兰克福"}},
		{CanonicalName: "Munich", Names: entity.DestinationNames{Ja: "ミュンヘン", En: "Munich", Zh: "慕尼黑"}},
		{CanonicalName: "Helsinki", Names: entity.DestinationNames{Ja: "ヘルシンキ", En: "Helsinki", Zh: "赫尔辛基"}},
		{CanonicalName: "Istanbul", Names: entity.DestinationNames{Ja: "イスタンブール", En: "Istanbul", Zh: "伊斯坦布尔"}},
		{CanonicalName: "Dubai", Names: entity.DestinationNames{Ja: "ドバイ", En: "Dubai", Zh: "迪拜"}},
		{CanonicalName: "Doha", Names: entity.DestinationNames{Ja: "ドーハ", En: "Doha", Zh: "多哈"}},
	}
}
