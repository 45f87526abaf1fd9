package rules

// Default returns the built-in keyword tables for a bakery business.
// Order within each slice is load-bearing: the classifiers take the first
// match, and several terms appear in more than one table.
func Default() *Ruleset {
	return &Ruleset{
		RawMaterial: []string{
			"预拌粉", "面粉", "果酱", "馅料", "糖", "奶油", "黄油", "芝士", "奶酪",
			"酵母", "改良剂", "果胶", "巧克力", "可可", "抹茶", "香草", "杏仁",
			"开心果", "红豆沙", "绿豆", "莲蓉", "奶黄", "枣泥", "五仁", "凤梨",
			"紫薯", "黑芝麻", "麻薯", "大米", "烘焙原料", "烘焙材料", "原料", "材料",
			"果粒", "草莓", "鸡蛋", "蛋", "牛奶", "酸奶", "淡奶油", "鲜奶油",
			"白砂糖", "糖粉", "蜂蜜", "麦芽糖", "果干", "坚果", "核桃", "腰果",
			"葡萄干", "蔓越莓", "蓝莓", "柠檬", "橙子", "香草精", "食用色素",
			"泡打粉", "小苏打", "塔塔粉", "吉利丁", "明胶", "琼脂", "淀粉", "玉米淀粉",
		},
		Consumable: []string{
			"包装盒", "包装袋", "贴纸", "标签", "纸杯", "模具", "裱花", "油纸",
			"保鲜袋", "打包袋", "自封袋", "透明袋", "保温袋", "冷藏袋", "保鲜袋",
			"蛋糕盒", "面包盒", "甜品盒", "慕斯盒", "切块盒", "打包盒", "围边",
			"纸托", "马芬杯", "裱花袋", "裱花嘴", "装饰", "插件", "摆件", "插牌",
			"蜡烛", "贴纸", "不干胶", "封口贴", "logo", "二维码", "吸管", "餐具",
			"刀叉", "纸盘", "手套", "一次性", "蒸笼纸", "蒸笼垫", "笼布", "烘焙",
			"蛋糕", "面包", "甜品", "西点", "点心", "打包", "外卖", "配送",
			"布丁杯", "舒芙蕾杯", "烧杯",
			"标签机", "标签纸", "打印纸", "热敏标签",
			"可可百利", "薄脆片", "饼干脆片", "慕斯碎片",
			"三洋糕粉", "熟糯米粉", "防粘手粉",
			"MOMAX", "摩米士", "转换插头", "转换器",
			"冰格袋", "冰袋", "保鲜冷冻包", "冷冻包",
			"美工刀", "壁纸刀", "开箱刀", "裁纸刀", "手工刀",
			"保软剂", "保软酶", "保软保糯", "米制品保软剂",
		},
		Equipment: []string{
			"压面机", "揉面机", "擀面机", "面条机", "打蛋器", "奶泡器", "封口机",
			"烤箱", "烤盘", "蛋糕模", "面包模", "模具", "切蛋糕", "分片器", "分割器",
			"打奶泡", "糖艺灯", "拉糖", "翻糖", "发酵", "风炉", "平炉",
			"抹胚机", "抹面机", "摸胚机", "摸面机",
			"千层蛋糕皮机", "春卷皮机", "班戟皮机", "蛋皮机",
			"双温柜", "冷藏柜", "冷藏冷冻", "工作台冰箱", "冰箱",
			"洞洞板", "货架", "展示架",
			"炒馅机",
		},
		AbsoluteExclude: []string{
			"花呗", "还款", "话费", "电影票", "衣服", "服装", "睡衣", "内衣", "T恤",
			"牛仔裤", "短裤", "外套", "鞋子", "袜子", "包", "箱", "收纳", "钥匙",
			"化妆品", "药", "药品", "保健品", "茶", "花茶", "泡脚", "足浴", "血氧仪",
			"制氧机", "呼吸机", "轮椅", "矫正器", "拇指外翻", "自行车", "山地车",
			"公路车", "骑行", "水壶", "电池", "电机", "3D打印", "麻将机", "樟木箱",
			"相框", "照片", "充电", "数据线", "洗漱包", "玩具", "水枪", "捏捏乐",
			"小红书", "菜鸟", "寄件费", "转运", "税费费用", "海外税费",
			"国际转运", "补差价", "运费", "邮费", "补差", "补运费", "补胎", "牙刷",
			"羊肉粉", "牛肉粉", "米粉", "小吃", "速食", "方便", "土特产", "零食",
			"果脯", "蜜饯", "水城", "六盘水", "遵义", "花溪", "血糖", "太阳能",
			"牙科", "口腔", "补胎", "轮胎", "硫化", "胶条", "光轴", "固定环",
			"轴承", "锁紧环", "限位环", "轴套", "定位圈", "PETG", "打印耗材",
			"防冻液", "冷却液", "地暖", "锅炉", "暖气", "暖气片", "壁挂炉", "采暖",
			"汽车", "摩托", "电动车", "助力车", "代步车",
		},
		AmbiguousExcludes: ambiguousExcludes(),
		BusinessSoftware: []string{
			"Midjourney", "midjourney", "Stripe", "STRIPE",
		},
		PossiblyRelated: []string{
			"超市", "Supermarket", "Chemist", "Warehouse", "Tong Li", "ASIAN CITY",
			"NEW YEN YEN", "JOY MART", "YAOCHII", "LCLIMITED",
		},
		Bank: defaultBankRules(),
	}
}

// bakeryContext lists phrases that mark a description as bakery business even
// when it contains an ambiguous exclude keyword like 包 or 箱.
var bakeryContext = []string{
	"面包", "包装", "蛋糕", "甜品", "烘焙", "面包盒", "蛋糕盒", "包装盒",
	"包装袋", "打包", "外卖", "布丁杯", "舒芙蕾", "烧杯", "标签机", "标签纸",
	"可可百利", "薄脆片", "三洋糕粉", "熟糯米粉", "洞洞板", "双温柜", "冷藏柜",
	"转换插头", "转换器", "冰格袋", "冰袋", "保鲜冷冻", "冷冻包", "美工刀",
	"壁纸刀", "裁纸刀", "保软剂", "保软酶", "保软保糯", "雪媚娘", "驴打滚",
	"糯米果", "冰皮月饼",
}

func ambiguousExcludes() map[string][]string {
	m := make(map[string][]string)
	for _, kw := range []string{"包", "箱", "收纳", "茶", "零食", "充电", "米粉", "服装"} {
		m[kw] = bakeryContext
	}
	return m
}

func defaultBankRules() BankRules {
	return BankRules{
		BusinessExpense: []string{
			"foodlink", "food link", "food-link",
			"tong li", "asian city", "joy mart", "joymart", "yaochii",
			"lclimited", "lc limited",
			"pty", "ltd", "pty ltd", "company", "trading", "group",
			"invoice", "inv",
			"stripe", "midjourney", "xero", "myob", "shopify",
			"google cloud", "aws", "digitalocean",
			"energy", "origin", "agl", "electricity", "water corp", "synergy",
			"willoughby city counci", "willoughby city council",
			"asic", "basicingred", "whats cooking",
		},
		Personal: []string{
			"school", "college", "university", "uni ", "childcare", "kinder",
			"kindy", "montessori", "tuition", "music school", "swim school",
			"swimming school",
			"kmart", "target", "myer", "david jones", "ikea", "jb hi-fi",
			"harvey norman", "bunnings", "officeworks", "big w", "jd sports",
			"foot locker", "uniqlo", "h&m",
			"netflix", "spotify", "stan ", "youtube premium", "disney+",
			"disney plus", "amazon prime",
			"chemist", "pharmacy", "dentist", "optometrist", "optical",
			"clinic", "gp ",
			"restaurant", "cafe ", "coffee", "hair", "beauty", "spa ", "salon",
			" baron ", " kaylee ",
		},
		Supermarket: []string{
			"woolworths", "coles", "aldi", "iga ", "costco",
		},
		PossibleSupplier: []string{
			"barcodel australia", "foodlink australia pty ltd",
			"taobao yearly summary", "equipmentbrand", "independent technician",
			"kuringgui council", "ku ringgui council", "kuring gai council",
			"sydneywater", "sydney water", "energyaustralia", "energy australia",
			"agl", "liquorland", "河南星宸", "success logistics sydney",
			"佳音海运", "jiayin", "freshcorp fruitmarket", "iga", "aldi", "bws",
			"jj'm butchery mart", "7-eleven", "7 eleven", "asian city",
			"super fresh grocer", "bnglee", "officeworks",
			"new yen yen supermarket", "eg fuelco (australia) limited",
			"eg fuelco", "coles local", "ww metro", "reddy express pyable",
			"coles", "tong li supermarket", "bunnings warehouse", "woolworths",
			"harris farm markets",
		},
		Refund: []string{
			"refund", "refund purchase", "reversal",
		},
		Government: []string{
			"ato", "tax", "asic",
		},
	}
}
