package i18n

// Message keys shared with the engine.
const (
	KeyRequiredFields   = "error.required_fields"
	KeyUnknownCalc      = "error.unknown_calculator"
	KeyInvalidInput     = "error.invalid_input"
	KeyAPIRequestFailed = "error.api_request_failed"
	KeyUndefined        = "result.undefined"
)

var tables = map[Locale]map[string]string{
	English: en,
	Chinese: zh,
}

var en = map[string]string{
	KeyRequiredFields:   "Please fill all required fields",
	KeyUnknownCalc:      "Unknown calculator: %s",
	KeyInvalidInput:     "Invalid value for %s",
	KeyAPIRequestFailed: "API request failed: %s",
	KeyUndefined:        "The result is undefined for these inputs",

	"category.underweight":              "Underweight",
	"category.normal":                   "Normal",
	"category.overweight":               "Overweight",
	"category.obese":                    "Obese",
	"category.mild_prolongation":        "Mild Prolongation",
	"category.significant_prolongation": "Significant Prolongation",
	"category.mild_moderate_disease":    "Mild to Moderate PAD",
	"category.severe_disease":           "Severe PAD",
	"category.non_compressible":         "Non-compressible Arteries",
	"category.low_risk":                 "Low Risk",
	"category.moderate_risk":            "Moderate Risk",
	"category.high_risk":                "High Risk",
	"category.within_range":             "Within Normal Range",
	"category.out_of_range":             "Outside Normal Range",
	"category.reduced":                  "Reduced",
	"category.severely_reduced":         "Severely Reduced",

	"zone.active_recovery":     "Active Recovery",
	"zone.aerobic_base":        "Aerobic Base",
	"zone.aerobic_power":       "Aerobic Power",
	"zone.lactate_threshold":   "Lactate Threshold",
	"zone.neuromuscular_power": "Neuromuscular Power",
	"zone.zone":                "Training Zone",

	"activity.sedentary":         "Sedentary lifestyle",
	"activity.lightly_active":    "Lightly active",
	"activity.moderately_active": "Moderately active",
	"activity.very_active":       "Very active",
	"activity.extremely_active":  "Extra active",

	"goal.maintenance": "maintenance",
	"goal.weight_loss": "weight loss",
	"goal.weight_gain": "weight gain",

	"interp.bmi.underweight": "Your BMI is below normal range. Consider increasing nutritional intake.",
	"interp.bmi.normal":      "Your BMI is in the normal range. Maintain your current healthy lifestyle.",
	"interp.bmi.overweight":  "Your BMI is above normal range. Consider diet control and increased exercise.",
	"interp.bmi.obese":       "Your BMI is in the obese range. Consult a healthcare provider.",

	"interp.body_fat": "Body fat percentage calculated. Please refer to health standards for adjustments.",
	"interp.bmr":      "Your Basal Metabolic Rate is %s calories per day. This is the energy your body needs to maintain basic physiological functions at complete rest.",

	"interp.ideal_weight":         "Your ideal weight is approximately %s kg.",
	"interp.ideal_weight.current": "Your ideal weight is approximately %s kg. Current weight: %s kg.",

	"interp.qtc.normal":                   "QTc interval is normal. No arrhythmia risk detected.",
	"interp.qtc.mild_prolongation":        "QTc interval is mildly prolonged. Monitor ECG changes.",
	"interp.qtc.significant_prolongation": "QTc interval is significantly prolonged. High risk of arrhythmia, consult physician.",

	"interp.abi.normal":                "ABI is normal, no peripheral vascular disease detected.",
	"interp.abi.mild_moderate_disease": "ABI indicates mild to moderate peripheral artery disease.",
	"interp.abi.severe_disease":        "ABI indicates severe peripheral artery disease, seek immediate medical attention.",
	"interp.abi.non_compressible":      "ABI above 1.4 suggests non-compressible arteries. Further vascular assessment is recommended.",

	"interp.six_minute_walk":           "Your predicted 6-minute walk distance is %sm.",
	"interp.six_minute_walk.performed": "Your 6-minute walk distance is %sm, achieving %s%% of predicted value.",

	"interp.diabetes_risk": "Your 7.5-year diabetes risk is %s%%.",

	"interp.tdee":                 "Your Total Daily Energy Expenditure is %s calories. This includes basal metabolism and activity expenditure based on your %s level.",
	"interp.maintenance_calories": "Your maintenance calories are %s calories per day. For weight loss, reduce by 300-500 calories daily. For weight gain, add 300-500 calories daily.",

	"interp.lbm": "Your lean body mass is %skg, representing %s%% of your total weight. LBM includes muscle, bone, organs, and water, excluding fat. Estimated body fat: %skg (%s%%).",
	"interp.bsa": "Your Body Surface Area is %s square meters. BSA is commonly used in medical settings for drug dosage calculations and chemotherapy protocols. Normal adult BSA ranges from 1.5-2.0 m².",

	"interp.macronutrients": "Daily total calories: %s kcal. Designed for your %s goal.",
	"interp.protein":        "Calculated based on your %s activity level and %s goal.",
	"interp.fiber":          "Recommended daily fiber intake. Obtain through whole grains, vegetables, and fruits.",
	"interp.water_intake":   "Calculated based on your weight, activity level, and climate. About %s cups (250ml each). Recommend drinking in small amounts throughout the day.",

	"interp.blood_sugar.mg/dL":  "Normal fasting range: 70-99 mg/dL",
	"interp.blood_sugar.mmol/L": "Normal fasting range: 3.9-5.5 mmol/L",

	"interp.cholesterol.total": "Ideal range: <200 mg/dL (<5.2 mmol/L)",
	"interp.cholesterol.hdl":   "Ideal range: >40 mg/dL (>1.0 mmol/L) men, >50 mg/dL (>1.3 mmol/L) women",
	"interp.cholesterol.ldl":   "Ideal range: <100 mg/dL (<2.6 mmol/L)",

	"interp.heart_rate_zones": "Maximum heart rate: %s bpm",
	"interp.unit_conversion":  "Original value: %s %s",
}

var zh = map[string]string{
	KeyRequiredFields:   "请填写所有必填项",
	KeyUnknownCalc:      "未知计算器：%s",
	KeyInvalidInput:     "%s 的值无效",
	KeyAPIRequestFailed: "API请求失败：%s",
	KeyUndefined:        "该输入无法得出有效结果",

	"category.underweight":              "偏瘦",
	"category.normal":                   "正常",
	"category.overweight":               "超重",
	"category.obese":                    "肥胖",
	"category.mild_prolongation":        "轻度延长",
	"category.significant_prolongation": "明显延长",
	"category.mild_moderate_disease":    "轻中度外周动脉疾病",
	"category.severe_disease":           "严重外周动脉疾病",
	"category.non_compressible":         "动脉不可压缩",
	"category.low_risk":                 "低风险",
	"category.moderate_risk":            "中等风险",
	"category.high_risk":                "高风险",
	"category.within_range":             "正常范围内",
	"category.out_of_range":             "超出正常范围",
	"category.reduced":                  "降低",
	"category.severely_reduced":         "严重降低",

	"zone.active_recovery":     "积极恢复区",
	"zone.aerobic_base":        "有氧基础区",
	"zone.aerobic_power":       "有氧耐力区",
	"zone.lactate_threshold":   "乳酸阈值区",
	"zone.neuromuscular_power": "神经肌肉力量区",
	"zone.zone":                "训练区间",

	"activity.sedentary":         "久坐型生活方式",
	"activity.lightly_active":    "轻度活跃",
	"activity.moderately_active": "中度活跃",
	"activity.very_active":       "高度活跃",
	"activity.extremely_active":  "极度活跃",

	"goal.maintenance": "维持",
	"goal.weight_loss": "减重",
	"goal.weight_gain": "增重",

	"interp.bmi.underweight": "您的BMI偏低，建议增加营养摄入。",
	"interp.bmi.normal":      "您的BMI处于正常范围，请保持当前的健康生活方式。",
	"interp.bmi.overweight":  "您的BMI偏高，建议控制饮食，增加运动量。",
	"interp.bmi.obese":       "您的BMI过高，建议咨询医生制定减重计划。",

	"interp.body_fat": "体脂率已计算完成，请参考健康标准进行调整。",
	"interp.bmr":      "您的基础代谢率为 %s 千卡/天。这是您身体在完全静息状态下维持基本生理功能所需的能量。",

	"interp.ideal_weight":         "您的理想体重约为 %s kg。",
	"interp.ideal_weight.current": "您的理想体重约为 %s kg。当前体重：%s kg。",

	"interp.qtc.normal":                   "QTc间期正常，无心律失常风险。",
	"interp.qtc.mild_prolongation":        "QTc间期轻度延长，建议监测心电图变化。",
	"interp.qtc.significant_prolongation": "QTc间期明显延长，存在心律失常风险，建议就医。",

	"interp.abi.normal":                "踝肱指数正常，未发现外周血管疾病征象。",
	"interp.abi.mild_moderate_disease": "踝肱指数显示轻度至中度外周动脉疾病。",
	"interp.abi.severe_disease":        "踝肱指数显示严重外周动脉疾病，建议立即就医。",
	"interp.abi.non_compressible":      "踝肱指数高于1.4，提示动脉僵硬不可压缩，建议进一步血管评估。",

	"interp.six_minute_walk":           "您的预期6分钟步行距离为 %sm。",
	"interp.six_minute_walk.performed": "您的6分钟步行距离为 %sm，达到预期值的%s%%。",

	"interp.diabetes_risk": "您未来7.5年内患糖尿病的风险为%s%%。",

	"interp.tdee":                 "您的每日总能量消耗为 %s 千卡。这包括了基础代谢和活动消耗。基于您的%s水平计算。",
	"interp.maintenance_calories": "您的维持体重所需的每日热量为 %s 千卡。若想减重，可在此基础上每日减少300-500千卡。若想增重，可每日增加300-500千卡。",

	"interp.lbm": "您的瘦体重为 %skg，占总体重的%s%%。瘦体重包括肌肉、骨骼、器官和水分，不包括脂肪。估算体脂重：%skg (%s%%)",
	"interp.bsa": "您的体表面积为 %s 平方米。BSA常用于医疗领域，如药物剂量计算、化疗方案制定等。成人正常BSA范围为1.5-2.0㎡。",

	"interp.macronutrients": "每日总热量：%s千卡。根据您的%s目标设计。",
	"interp.protein":        "根据您的%s水平和%s目标计算。",
	"interp.fiber":          "每日推荐膳食纤维摄入量。建议通过全谷物、蔬菜、水果等获取。",
	"interp.water_intake":   "根据您的体重、活动水平和气候条件计算。约 %s 杯水 (250ml/杯)。建议分次少量饮用。",

	"interp.blood_sugar.mg/dL":  "空腹血糖正常范围：70-99 mg/dL",
	"interp.blood_sugar.mmol/L": "空腹血糖正常范围：3.9-5.5 mmol/L",

	"interp.cholesterol.total": "理想范围: <200 mg/dL (<5.2 mmol/L)",
	"interp.cholesterol.hdl":   "理想范围: >40 mg/dL (>1.0 mmol/L) 男性, >50 mg/dL (>1.3 mmol/L) 女性",
	"interp.cholesterol.ldl":   "理想范围: <100 mg/dL (<2.6 mmol/L)",

	"interp.heart_rate_zones": "最大心率: %s bpm",
	"interp.unit_conversion":  "原值: %s %s",
}
