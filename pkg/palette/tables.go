package palette

// Stops are linear-light RGB values ordered from the low to the high end of
// the mapped range.

var incandescent = [...]Color{
	rgb(0.807843137254902, 1.0, 1.0),
	rgb(0.7764705882352941, 0.9686274509803922, 0.8392156862745098),
	rgb(0.6352941176470588, 0.9568627450980393, 0.6078431372549019),
	rgb(0.7333333333333333, 0.8941176470588236, 0.3254901960784314),
	rgb(0.8352941176470589, 0.807843137254902, 0.01568627450980392),
	rgb(0.9058823529411765, 0.7098039215686275, 0.011764705882352941),
	rgb(0.9450980392156862, 0.6, 0.011764705882352941),
	rgb(0.9647058823529412, 0.4745098039215686, 0.043137254901960784),
	rgb(0.9764705882352941, 0.28627450980392155, 0.00784313725490196),
	rgb(0.8941176470588236, 0.0196078431372549, 0.08235294117647059),
	rgb(0.6588235294117647, 0.0, 0.011764705882352941),
}

var incandescentInvalid = rgb(0.5333333333333333, 0.5333333333333333, 0.5333333333333333)

var rainbow = [...]Color{
	rgb(0.9098039215686274, 0.9254901960784314, 0.984313725490196),
	rgb(0.8666666666666667, 0.8470588235294118, 0.9372549019607843),
	rgb(0.8196078431372549, 0.7568627450980392, 0.8823529411764706),
	rgb(0.7647058823529411, 0.6588235294117647, 0.8196078431372549),
	rgb(0.7098039215686275, 0.5607843137254902, 0.7607843137254902),
	rgb(0.6549019607843137, 0.47058823529411764, 0.7058823529411765),
	rgb(0.6078431372549019, 0.3843137254901961, 0.6549019607843137),
	rgb(0.5490196078431373, 0.3058823529411765, 0.6),
	rgb(0.43529411764705883, 0.2980392156862745, 0.6078431372549019),
	rgb(0.3764705882352941, 0.34901960784313724, 0.6627450980392157),
	rgb(0.3333333333333333, 0.40784313725490196, 0.7215686274509804),
	rgb(0.3058823529411765, 0.4745098039215686, 0.7725490196078432),
	rgb(0.30196078431372547, 0.5411764705882353, 0.7764705882352941),
	rgb(0.3058823529411765, 0.5882352941176471, 0.7372549019607844),
	rgb(0.32941176470588235, 0.6196078431372549, 0.7019607843137254),
	rgb(0.34901960784313724, 0.6470588235294118, 0.6627450980392157),
	rgb(0.3764705882352941, 0.6705882352941176, 0.6196078431372549),
	rgb(0.4117647058823529, 0.6941176470588235, 0.5647058823529412),
	rgb(0.4666666666666667, 0.7176470588235294, 0.49019607843137253),
	rgb(0.5490196078431373, 0.7372549019607844, 0.40784313725490196),
	rgb(0.6509803921568628, 0.7450980392156863, 0.32941176470588235),
	rgb(0.7450980392156863, 0.7372549019607844, 0.2823529411764706),
	rgb(0.8196078431372549, 0.7098039215686275, 0.2549019607843137),
	rgb(0.8666666666666667, 0.6666666666666666, 0.23529411764705882),
	rgb(0.8941176470588236, 0.611764705882353, 0.2235294117647059),
	rgb(0.9058823529411765, 0.5490196078431373, 0.20784313725490197),
	rgb(0.9019607843137255, 0.4745098039215686, 0.19607843137254902),
	rgb(0.8941176470588236, 0.38823529411764707, 0.17647058823529413),
	rgb(0.8745098039215686, 0.2823529411764706, 0.1568627450980392),
	rgb(0.8549019607843137, 0.13333333333333333, 0.13333333333333333),
	rgb(0.7215686274509804, 0.13333333333333333, 0.11764705882352941),
	rgb(0.5843137254901961, 0.12941176470588237, 0.10588235294117647),
	rgb(0.4470588235294118, 0.11764705882352941, 0.09019607843137255),
	rgb(0.3215686274509804, 0.10196078431372549, 0.07450980392156863),
}

var rainbowInvalid = rgb(0.4, 0.4, 0.4)
