package market

import "kabusim/internal/models"

// tokyoListings is the seeded catalog of tradable Tokyo-exchange securities.
// Base prices approximate actual levels around late 2024 / early 2025.
var tokyoListings = []models.SecurityListing{
	// 自動車
	{Code: "7203", Name: "トヨタ自動車", BasePrice: 3770},
	{Code: "7267", Name: "本田技研工業", BasePrice: 1800},
	{Code: "7201", Name: "日産自動車", BasePrice: 390},

	// 電機・精密
	{Code: "6758", Name: "ソニーグループ", BasePrice: 2800},
	{Code: "6752", Name: "パナソニックHD", BasePrice: 1400},
	{Code: "6501", Name: "日立製作所", BasePrice: 3600},
	{Code: "6702", Name: "富士通", BasePrice: 2900},
	{Code: "6701", Name: "NEC", BasePrice: 16500},
	{Code: "7751", Name: "キヤノン", BasePrice: 3800},
	{Code: "4901", Name: "富士フイルムHD", BasePrice: 3800},

	// 半導体・電子部品
	{Code: "8035", Name: "東京エレクトロン", BasePrice: 24000},
	{Code: "6146", Name: "ディスコ", BasePrice: 40000},
	{Code: "6981", Name: "村田製作所", BasePrice: 2800},
	{Code: "6902", Name: "デンソー", BasePrice: 2700},

	// IT・通信
	{Code: "9984", Name: "ソフトバンクグループ", BasePrice: 10300},
	{Code: "9432", Name: "日本電信電話(NTT)", BasePrice: 150},
	{Code: "9433", Name: "KDDI", BasePrice: 4700},
	{Code: "9434", Name: "ソフトバンク", BasePrice: 2100},
	{Code: "9613", Name: "NTTデータグループ", BasePrice: 2300},

	// 商社
	{Code: "8058", Name: "三菱商事", BasePrice: 2700},

	// 流通・小売
	{Code: "9983", Name: "ファーストリテイリング", BasePrice: 53000},
	{Code: "3382", Name: "セブン&アイHD", BasePrice: 2100},
	{Code: "8267", Name: "イオン", BasePrice: 3700},

	// 金融・保険
	{Code: "8316", Name: "三井住友FG", BasePrice: 3900},
	{Code: "8306", Name: "三菱UFJ FG", BasePrice: 1700},
	{Code: "8766", Name: "東京海上HD", BasePrice: 5300},

	// 精密・機械
	{Code: "6861", Name: "キーエンス", BasePrice: 67000},
	{Code: "6273", Name: "SMC", BasePrice: 64000},
	{Code: "6954", Name: "ファナック", BasePrice: 4200},
	{Code: "6367", Name: "ダイキン工業", BasePrice: 23000},
	{Code: "6506", Name: "安川電機", BasePrice: 4500},

	// 化学・素材
	{Code: "4063", Name: "信越化学工業", BasePrice: 5600},
	{Code: "5401", Name: "日本製鉄", BasePrice: 3100},
	{Code: "5108", Name: "ブリヂストン", BasePrice: 5200},

	// 製薬・医療
	{Code: "4502", Name: "武田薬品工業", BasePrice: 4000},
	{Code: "4519", Name: "中外製薬", BasePrice: 6500},
	{Code: "4568", Name: "第一三共", BasePrice: 4900},
	{Code: "4543", Name: "テルモ", BasePrice: 3000},

	// サービス・エンタメ
	{Code: "6098", Name: "リクルートHD", BasePrice: 9500},
	{Code: "7741", Name: "HOYA", BasePrice: 17500},
	{Code: "7974", Name: "任天堂", BasePrice: 8800},
	{Code: "4661", Name: "オリエンタルランド", BasePrice: 4800},
	{Code: "4385", Name: "メルカリ", BasePrice: 2200},
	{Code: "2914", Name: "日本たばこ産業(JT)", BasePrice: 4000},
}
